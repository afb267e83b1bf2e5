package agls

import (
	"fmt"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
)

// Renderer appends the configured AGLS tags to a page's meta block.
type Renderer struct {
	Schemas  []LinkSchema
	Metadata []MetaSchema
	Log      *logrus.Entry
}

func NewRenderer(schemas []LinkSchema, metadata []MetaSchema, log *logrus.Entry) *Renderer {
	if log == nil {
		log = logrus.WithField("module", "agls")
	}
	return &Renderer{Schemas: schemas, Metadata: metadata, Log: log}
}

// RenderTags answers tags followed by the schema links and the metadata tags of page.
func (r *Renderer) RenderTags(tags string, page *Page) string {
	var b strings.Builder
	b.WriteString(tags)

	// never glue the first new tag onto the previous line
	if !strings.HasSuffix(tags, "\n") {
		b.WriteByte('\n')
	}

	for i, s := range r.Schemas {
		if s.Name == "" || s.Href == "" {
			r.logger().Debugf("skipping schema entry %d: name and href are required", i)
			continue
		}
		fmt.Fprintf(&b, "<link rel=\"%s\" href=\"%s\" />\n", html.EscapeString(s.Name), html.EscapeString(s.Href))
	}

	for i, m := range r.Metadata {
		if m.Name == "" {
			r.logger().Debugf("skipping metadata entry %d: name is required", i)
			continue
		}
		content := ""
		if m.Property != "" && page != nil {
			var ok bool
			content, ok = page.Property(m.Property)
			if !ok {
				r.logger().WithField("property", m.Property).Debug("unknown metadata property")
			}
		}
		b.WriteString(MetaTag(m.Name, content, m.Scheme))
	}

	return b.String()
}

func (r *Renderer) logger() *logrus.Entry {
	if r.Log == nil {
		r.Log = logrus.WithField("module", "agls")
	}
	return r.Log
}

// MetaTag answers a single newline terminated meta tag. Blank scheme and content are omitted.
func MetaTag(name, content, scheme string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<meta name=\"%s\"", html.EscapeString(name))
	if !blank(scheme) {
		fmt.Fprintf(&b, " scheme=\"%s\"", html.EscapeString(scheme))
	}
	if !blank(content) {
		fmt.Fprintf(&b, " content=\"%s\"", html.EscapeString(content))
	}
	b.WriteString(" />\n")
	return b.String()
}

// blank reports whether an attribute value counts as unset. "0" does.
func blank(v string) bool {
	return v == "" || v == "0"
}
