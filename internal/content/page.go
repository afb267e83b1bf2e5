package content

import (
	"path"
	"strings"
	"time"
)

const DefaultPageType = "Page"

// Page is a content page served by the site.
type Page struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	URLSegment      string    `gorm:"type:text;not null;uniqueIndex" json:"url"`
	PageType        string    `gorm:"type:text;not null;default:'Page'" json:"type"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	MetaTitle       string    `gorm:"size:255" json:"meta_title,omitempty"`
	MetaDescription string    `gorm:"type:text" json:"meta_description,omitempty"`
	Content         string    `gorm:"type:text" json:"content"`
	Locale          string    `gorm:"size:35" json:"locale,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NormalizeURL answers the canonical form of a URL segment: leading slash, no trailing slash.
func NormalizeURL(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	cleaned := path.Clean("/" + strings.Trim(p, "/"))
	return cleaned
}
