package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// newMarkdown builds the goldmark instance used for authored prose and
// code sections.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// prose converts authored markdown to HTML. On conversion failure the
// raw text is escaped and returned as-is; authored content must degrade,
// not crash.
func (r *Renderer) prose(src string) template.HTML {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(buf.String())
}

// codeBlock renders source code as a highlighted block by round-tripping
// it through a fenced markdown block.
func (r *Renderer) codeBlock(lang, code string) template.HTML {
	if code == "" {
		return ""
	}
	fence := "```"
	// Widen the fence if the code itself contains backtick runs.
	for strings.Contains(code, fence) {
		fence += "`"
	}
	src := fmt.Sprintf("%s%s\n%s\n%s\n", fence, lang, code, fence)
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(code) + "</pre>")
	}
	return template.HTML(buf.String())
}
