// Package render turns content documents into HTML blocks. It is the
// interpreter for the content schema: each section selects its template
// purely by type tag, block order follows section order, and unrecognized
// tags render nothing at all.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/karimzidan/devatlas/internal/content"
	"github.com/yuin/goldmark"
)

// Block is one rendered section.
type Block struct {
	Kind content.SectionType
	HTML template.HTML
}

// Page is a fully rendered document: its heading plus one block per
// recognized section, in input order.
type Page struct {
	Title       string
	Description string
	Blocks      []Block
}

// Renderer renders documents. It holds no mutable state and is safe for
// concurrent use.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates a Renderer with compiled block templates.
func New() *Renderer {
	r := &Renderer{md: newMarkdown()}
	r.tmpl = template.Must(template.New("blocks").Funcs(template.FuncMap{
		"prose": r.prose,
	}).Parse(blockTemplates))
	return r
}

// Render produces a Page from a document. Sections with unrecognized
// type tags are skipped silently so that forward-compatible content
// additions never break existing binaries. Sections missing the fields
// their tag requires render degraded (an empty block body), never an
// error.
func (r *Renderer) Render(doc *content.Document) (Page, error) {
	page := Page{Title: doc.Title, Description: doc.Description}

	for _, sec := range doc.Sections {
		var (
			html template.HTML
			err  error
		)
		switch sec.Type {
		case content.SectionConcept:
			html, err = r.execute("concept", sec)
		case content.SectionList:
			html, err = r.execute("list", sec)
		case content.SectionCode:
			html = r.renderCodeSection(sec)
		case content.SectionTable:
			html, err = r.execute("table", sec)
		default:
			continue
		}
		if err != nil {
			return Page{}, fmt.Errorf("rendering section %q: %w", sec.Title, err)
		}
		page.Blocks = append(page.Blocks, Block{Kind: sec.Type, HTML: html})
	}

	return page, nil
}

func (r *Renderer) execute(name string, sec content.Section) (template.HTML, error) {
	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, name, sec); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func (r *Renderer) renderCodeSection(sec content.Section) template.HTML {
	var b strings.Builder
	b.WriteString(`<section class="block block-code">`)
	if sec.Title != "" {
		b.WriteString("<h2>" + template.HTMLEscapeString(sec.Title) + "</h2>")
	}
	b.WriteString(string(r.codeBlock(sec.Language, sec.Code)))
	b.WriteString(`</section>`)
	return template.HTML(b.String())
}

// blockTemplates holds one named template per recognized section type.
const blockTemplates = `
{{define "concept"}}<section class="block block-concept">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="cards">{{range .Concepts}}<div class="card"><h3>{{.Title}}</h3><div class="card-body">{{prose .Description}}</div></div>{{end}}</div></section>{{end}}

{{define "list"}}<section class="block block-list">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<div class="cards cards-grid">{{range .Items}}<div class="card"><h3>{{.Title}}</h3><div class="card-body">{{prose .Description}}</div>{{if .Examples}}<div class="pills">{{range .Examples}}<span class="pill">{{.}}</span>{{end}}</div>{{end}}</div>{{end}}</div></section>{{end}}

{{define "table"}}<section class="block block-table">{{if .Title}}<h2>{{.Title}}</h2>{{end}}<table>{{if .Columns}}<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>{{end}}<tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody></table></section>{{end}}
`
