package agls

import "time"

const (
	AggregationLevelItem       = "item"
	AggregationLevelCollection = "collection"
)

// DefaultDateLayout is used when neither the caller nor the page type names a layout.
const DefaultDateLayout = "2006-01-02 15:04:05"

// Source is implemented by the host content entity.
type Source interface {
	MetaTitle() string
	MetaCreated() time.Time
	MetaModified() time.Time
	// AbsoluteLink is the canonical absolute URL.
	AbsoluteLink() string
	MetaDescription() string
	// MetaSummary is the length limited summary of the page content.
	MetaSummary() string
	ContentLocale() string
	PageType() string
}

// Page resolves the AGLS values of a single page.
type Page struct {
	src      Source
	settings *Settings
	formats  DateFormats
	fallback string
}

// NewPage binds src to the site settings. formats are the layouts configured for the
// page type of src, zero when none are configured.
func NewPage(src Source, settings *Settings, formats DateFormats) *Page {
	if settings == nil {
		settings = NewSettings()
	}
	return &Page{src: src, settings: settings, formats: formats, fallback: DefaultDateLayout}
}

// WithDefaultLayout overrides the last resort date layout.
func (p *Page) WithDefaultLayout(layout string) *Page {
	if layout != "" {
		p.fallback = layout
	}
	return p
}

func (p *Page) Creator() string   { return p.settings.CreatorString() }
func (p *Page) Publisher() string { return p.settings.PublisherString() }
func (p *Page) Title() string     { return p.src.MetaTitle() }
func (p *Page) Subject() string   { return p.Title() }

func (p *Page) Created() time.Time     { return p.src.MetaCreated() }
func (p *Page) CreatedFormat() string  { return p.formats.Created }
func (p *Page) Modified() time.Time    { return p.src.MetaModified() }
func (p *Page) ModifiedFormat() string { return p.formats.Modified }

// CreatedFormatted formats the created date with layout, the page type layout or the default.
func (p *Page) CreatedFormatted(layout string) string {
	return p.formatDate(p.Created(), layout, p.CreatedFormat())
}

func (p *Page) ModifiedFormatted(layout string) string {
	return p.formatDate(p.Modified(), layout, p.ModifiedFormat())
}

func (p *Page) formatDate(t time.Time, explicit, configured string) string {
	if explicit == "" && configured == "" {
		explicit = p.fallback
	}
	return FormatDate(t, explicit, configured)
}

func (p *Page) Identifier() string { return p.src.AbsoluteLink() }

// Description prefers the explicit meta description over the content summary.
func (p *Page) Description() string {
	if d := p.src.MetaDescription(); d != "" {
		return d
	}
	return p.src.MetaSummary()
}

func (p *Page) Language() string { return p.src.ContentLocale() }

func (p *Page) AggregationLevel() string { return AggregationLevelCollection }

// FormatDate formats t with explicit, else configured, else DefaultDateLayout.
// A zero time answers "".
func FormatDate(t time.Time, explicit, configured string) string {
	if t.IsZero() {
		return ""
	}
	layout := explicit
	if layout == "" {
		layout = configured
	}
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}
