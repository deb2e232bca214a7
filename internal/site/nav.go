package site

import (
	"html"
	"strings"

	"github.com/karimzidan/devatlas/internal/content"
)

// NavHTML renders the sidebar navigation from the catalog. activePath
// is the current request path; the matching topic link gets the active
// class. basePath is prepended to every href so the output works both
// served at / and built into a static directory.
func NavHTML(catalog []content.Category, activePath, basePath string) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, cat := range catalog {
		b.WriteString(`<li class="nav-category">`)
		b.WriteString(html.EscapeString(cat.Title))
		b.WriteString("</li>\n")
		for _, e := range cat.Entries {
			b.WriteString(`<li class="nav-topic"><a href="`)
			b.WriteString(basePath + strings.TrimPrefix(e.Path, "/"))
			b.WriteString(`"`)
			if e.Path == activePath {
				b.WriteString(` class="active"`)
			}
			b.WriteString(">")
			b.WriteString(html.EscapeString(e.Title))
			b.WriteString("</a></li>\n")
		}
	}
	b.WriteString("</ul>\n")
	return b.String()
}
