package api

import (
	"github.com/kovi/agls/internal/agls"
	"github.com/kovi/agls/internal/audit"
	"github.com/kovi/agls/internal/config"
	"github.com/kovi/agls/internal/content"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Entry
	Audit  *audit.Auditor
	Sync   *SyncController
}

func (h *Handler) siteInfo() content.SiteInfo {
	return content.SiteInfo{
		BaseURL:       h.Config.Site.BaseURL,
		DefaultLocale: h.Config.Site.DefaultLocale,
		SummaryLength: h.Config.Site.SummaryLength,
		Generator:     h.Config.Site.Generator,
	}
}

func (h *Handler) renderer() *agls.Renderer {
	return agls.NewRenderer(h.Config.AGLS.Schemas, h.Config.AGLS.Metadata, h.Log)
}

// CurrentSettings answers the stored site settings, or the factory defaults when
// nothing has been saved yet.
func (h *Handler) CurrentSettings(tx *gorm.DB) (*agls.Settings, error) {
	var s agls.Settings
	r := tx.Order("id").Limit(1).Find(&s)
	if r.Error != nil {
		return nil, r.Error
	}
	if r.RowsAffected == 0 {
		return agls.NewSettings(), nil
	}
	return &s, nil
}

// aglsPage binds a stored page to the site settings and its page type formats.
func (h *Handler) aglsPage(p *content.Page, settings *agls.Settings) (*agls.Page, *content.PageSource) {
	src := content.NewPageSource(p, h.siteInfo())
	page := agls.NewPage(src, settings, h.Config.DateFormats(src.PageType())).
		WithDefaultLayout(h.Config.AGLS.DefaultDateFormat)
	return page, src
}

// GetPage answers the page stored under url, nil when there is none.
func (h *Handler) GetPage(url string) (*content.Page, error) {
	var p content.Page
	r := h.DB.Where("url_segment = ?", content.NormalizeURL(url)).Limit(1).Find(&p)
	if r.Error != nil {
		return nil, r.Error
	}
	if r.RowsAffected != 1 {
		return nil, nil
	}
	return &p, nil
}
