package api

import (
	"strings"

	"github.com/kovi/agls/internal/agls"
	"github.com/kovi/agls/internal/content"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&agls.Settings{},
		&content.Page{},
	)
}

type OrganizationPatch struct {
	CorporateName *string `json:"corporate_name"`
	Address       *string `json:"address"`
	Contact       *string `json:"contact"`
}

func (p *OrganizationPatch) apply(r *agls.OrganizationRecord) {
	if p == nil {
		return
	}
	if p.CorporateName != nil {
		r.CorporateName = *p.CorporateName
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Contact != nil {
		r.Contact = *p.Contact
	}
}

type SettingsPatchRequest struct {
	Creator                *OrganizationPatch `json:"creator"`
	Publisher              *OrganizationPatch `json:"publisher"`
	PublisherSameAsCreator *bool              `json:"publisher_same_as_creator"`
}

type SettingsResponse struct {
	Form      agls.Form      `json:"form"`
	Values    *agls.Settings `json:"values"`
	Creator   string         `json:"creator"`
	Publisher string         `json:"publisher"`
}

type PageRequest struct {
	URL             *string `json:"url"`
	Type            *string `json:"type"`
	Title           *string `json:"title"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	Content         *string `json:"content"`
	Locale          *string `json:"locale"`
}

func (r *PageRequest) toPage() content.Page {
	p := content.Page{PageType: content.DefaultPageType}
	if r.URL != nil {
		p.URLSegment = content.NormalizeURL(*r.URL)
	}
	if r.Type != nil && *r.Type != "" {
		p.PageType = *r.Type
	}
	if r.Title != nil {
		p.Title = strings.TrimSpace(*r.Title)
	}
	if r.MetaTitle != nil {
		p.MetaTitle = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		p.MetaDescription = *r.MetaDescription
	}
	if r.Content != nil {
		p.Content = *r.Content
	}
	if r.Locale != nil {
		p.Locale = *r.Locale
	}
	return p
}

func (r *PageRequest) updates() map[string]any {
	u := map[string]any{}
	if r.URL != nil {
		u["url_segment"] = content.NormalizeURL(*r.URL)
	}
	if r.Type != nil {
		u["page_type"] = *r.Type
	}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.MetaTitle != nil {
		u["meta_title"] = *r.MetaTitle
	}
	if r.MetaDescription != nil {
		u["meta_description"] = *r.MetaDescription
	}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Locale != nil {
		u["locale"] = *r.Locale
	}
	return u
}

type AGLSResponse struct {
	Page       *content.Page     `json:"page"`
	Properties map[string]string `json:"properties"`
	Tags       string            `json:"tags"`
}
