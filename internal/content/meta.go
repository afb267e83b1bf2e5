package content

import (
	"fmt"
	"html"
	"strings"
)

// BaseMetaTags answers the page's own head block: title, generator, content type and
// description. The last tag is not newline terminated.
func BaseMetaTags(s *PageSource) string {
	tags := []string{
		fmt.Sprintf("<title>%s</title>", html.EscapeString(s.MetaTitle())),
	}
	if s.Site.Generator != "" {
		tags = append(tags, fmt.Sprintf("<meta name=\"generator\" content=\"%s\" />", html.EscapeString(s.Site.Generator)))
	}
	tags = append(tags, "<meta http-equiv=\"Content-Type\" content=\"text/html; charset=utf-8\" />")
	if d := s.MetaDescription(); d != "" {
		tags = append(tags, fmt.Sprintf("<meta name=\"description\" content=\"%s\" />", html.EscapeString(d)))
	}
	return strings.Join(tags, "\n")
}
