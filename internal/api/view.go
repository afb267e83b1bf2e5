package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kovi/agls/internal/content"
)

const pageTemplateName = "page.html"

var pageTemplate = template.Must(template.New(pageTemplateName).Parse(`<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
{{ .Head }}</head>
<body>
<h1>{{ .Title }}</h1>
{{ .Body }}
</body>
</html>
`))

// HeadTags answers the page's base meta block with the AGLS tags appended.
func (h *Handler) HeadTags(p *content.Page) (string, error) {
	settings, err := h.CurrentSettings(h.DB)
	if err != nil {
		return "", err
	}
	page, src := h.aglsPage(p, settings)
	return h.renderer().RenderTags(content.BaseMetaTags(src), page), nil
}

// ServePage renders the page stored under the request path.
func (h *Handler) ServePage(c *gin.Context) {
	log := logger(c)

	p, err := h.GetPage(c.Request.URL.Path)
	if err != nil {
		log.WithError(err).Error("Page lookup failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	if p == nil {
		c.Status(http.StatusNotFound)
		return
	}

	head, err := h.HeadTags(p)
	if err != nil {
		log.WithError(err).Error("Failed to build meta tags")
		c.Status(http.StatusInternalServerError)
		return
	}

	body, err := content.RenderBody(p.Content)
	if err != nil {
		log.WithError(err).WithField("page", p.URLSegment).Error("Failed to render page body")
		c.Status(http.StatusInternalServerError)
		return
	}

	src := content.NewPageSource(p, h.siteInfo())
	c.HTML(http.StatusOK, pageTemplateName, gin.H{
		"Lang":  src.ContentLocale(),
		"Title": p.Title,
		"Head":  template.HTML(head),
		"Body":  template.HTML(body),
	})
}
