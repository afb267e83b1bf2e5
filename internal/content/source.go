package content

import (
	"bytes"
	"html"
	"strings"
	"time"

	"github.com/kovi/agls/internal/utils"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"golang.org/x/text/language"
)

// SiteInfo carries the site level values a page needs to describe itself.
type SiteInfo struct {
	BaseURL       string
	DefaultLocale string
	SummaryLength int
	Generator     string
}

// PageSource exposes a stored page to the AGLS tag assembler.
type PageSource struct {
	Page *Page
	Site SiteInfo
}

func NewPageSource(p *Page, site SiteInfo) *PageSource {
	return &PageSource{Page: p, Site: site}
}

// MetaTitle answers the explicit meta title, falling back to the page title.
func (s *PageSource) MetaTitle() string {
	if t := strings.TrimSpace(s.Page.MetaTitle); t != "" {
		return t
	}
	return s.Page.Title
}

func (s *PageSource) MetaCreated() time.Time  { return s.Page.CreatedAt }
func (s *PageSource) MetaModified() time.Time { return s.Page.UpdatedAt }

func (s *PageSource) AbsoluteLink() string {
	base := strings.TrimRight(s.Site.BaseURL, "/")
	p := NormalizeURL(s.Page.URLSegment)
	if p == "/" {
		return base + "/"
	}
	return base + p
}

func (s *PageSource) MetaDescription() string {
	return strings.TrimSpace(s.Page.MetaDescription)
}

func (s *PageSource) MetaSummary() string {
	return Summary(s.Page.Content, s.Site.SummaryLength)
}

// ContentLocale answers the page locale, else the site default, as a BCP 47 tag.
// Values that do not parse are answered unchanged.
func (s *PageSource) ContentLocale() string {
	locale := strings.TrimSpace(s.Page.Locale)
	if locale == "" {
		locale = s.Site.DefaultLocale
	}
	return CanonicalLocale(locale)
}

func (s *PageSource) PageType() string {
	if s.Page.PageType == "" {
		return DefaultPageType
	}
	return s.Page.PageType
}

// CanonicalLocale turns "en_au" style locales into "en-AU".
func CanonicalLocale(locale string) string {
	if locale == "" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	return tag.String()
}

const summarySuffix = "..."

var (
	markdown    = goldmark.New()
	stripPolicy = bluemonday.StrictPolicy()
	bodyPolicy  = bluemonday.UGCPolicy()
)

// RenderBody converts the markdown body to sanitised HTML.
func RenderBody(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return bodyPolicy.Sanitize(buf.String()), nil
}

// PlainText answers the text content of a markdown body.
func PlainText(source string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return utils.CollapseSpace(source)
	}
	// goldmark ends every block with a newline, so words of adjacent blocks stay apart
	return utils.CollapseSpace(html.UnescapeString(stripPolicy.Sanitize(buf.String())))
}

// Summary answers the plain text of source limited to the closest word under limit characters.
func Summary(source string, limit int) string {
	return utils.LimitToClosestWord(PlainText(source), limit, summarySuffix)
}
