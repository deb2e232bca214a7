package site

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/grammar"
	"github.com/karimzidan/devatlas/internal/render"
)

// Shell renders the outer page chrome around a body fragment.
type Shell struct {
	tmpl       *template.Template
	bodies     *template.Template
	SiteName   string
	LiveReload bool
}

type shellData struct {
	Title      string
	SiteName   string
	BasePath   string
	NavHTML    template.HTML
	Body       template.HTML
	LiveReload bool
}

func NewShell(siteName string) *Shell {
	return &Shell{
		tmpl:     template.Must(template.New("shell").Parse(shellTemplate)),
		bodies:   template.Must(template.New("bodies").Parse(bodyTemplates)),
		SiteName: siteName,
	}
}

// RenderPage writes the full HTML page. activePath selects the
// highlighted sidebar entry; basePath prefixes every asset and nav href.
func (s *Shell) RenderPage(w io.Writer, title, activePath, basePath string, body template.HTML) error {
	return s.tmpl.Execute(w, shellData{
		Title:      title,
		SiteName:   s.SiteName,
		BasePath:   basePath,
		NavHTML:    template.HTML(NavHTML(content.Catalog, activePath, basePath)),
		Body:       body,
		LiveReload: s.LiveReload,
	})
}

func (s *Shell) body(name string, data any) (template.HTML, error) {
	var b strings.Builder
	if err := s.bodies.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(b.String()), nil
}

// HomeBody renders the landing page: one card grid per catalog category.
func (s *Shell) HomeBody() (template.HTML, error) {
	return s.body("home", struct {
		SiteName string
		Catalog  []content.Category
	}{s.SiteName, content.Catalog})
}

// TopicBody renders a content document already turned into blocks.
func (s *Shell) TopicBody(page *render.Page) (template.HTML, error) {
	return s.body("topic", page)
}

// NotFoundBody renders the terminal error page, echoing the literal
// section and topic from the URL plus the underlying error.
func (s *Shell) NotFoundBody(section, topic string, err error) (template.HTML, error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return s.body("notfound", struct {
		Section, Topic, Err string
	}{section, topic, msg})
}

// browseItem is one expandable card on a browse page.
type browseItem struct {
	Title       string
	Description string
	Expanded    bool
	ToggleHref  string
}

// BrowseBody renders a document's concept sections as a filterable,
// single-select expandable card list. Used for the Scrum glossary and
// the code-review checklist.
func (s *Shell) BrowseBody(doc *content.Document, path, query, expanded string) (template.HTML, error) {
	var flat []content.ListItem
	for _, sec := range doc.Sections {
		switch sec.Type {
		case content.SectionList:
			flat = append(flat, sec.Items...)
		case content.SectionConcept:
			for _, c := range sec.Concepts {
				flat = append(flat, content.ListItem{Title: c.Title, Description: c.Description})
			}
		}
	}
	var items []browseItem
	for _, it := range FilterItems(flat, query) {
		items = append(items, browseItem{
			Title:       it.Title,
			Description: it.Description,
			Expanded:    it.Title == expanded,
			ToggleHref:  browseHref(path, query, NextExpanded(expanded, it.Title)),
		})
	}
	return s.body("browse", struct {
		Title       string
		Description string
		Path        string
		Query       string
		Items       []browseItem
	}{doc.Title, doc.Description, path, query, items})
}

func browseHref(path, query, expand string) string {
	href := path
	sep := "?"
	if query != "" {
		href += sep + "q=" + template.URLQueryEscaper(query)
		sep = "&"
	}
	if expand != "" {
		href += sep + "expand=" + template.URLQueryEscaper(expand)
	}
	return href
}

// tableRow is one row of a grammar table, headed by gender or case.
type tableRow struct {
	Header string
	Cells  []string
}

// CasesBody renders the case browser. caseParam comes from the
// query string; anything unknown falls back to the first case.
func (s *Shell) CasesBody(caseParam string) (template.HTML, error) {
	active := grammar.ParseCase(caseParam)
	info, _ := grammar.CaseInfoFor(active)

	var rows []tableRow
	for _, g := range grammar.Genders {
		row := tableRow{Header: string(g)}
		for _, at := range grammar.ArticleTypes {
			cell, ok := grammar.LookupArticle(active, g, at)
			if !ok {
				cell = ""
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	type tab struct {
		Name   string
		Href   string
		Active bool
	}
	var tabs []tab
	for _, c := range grammar.Cases {
		tabs = append(tabs, tab{
			Name:   string(c),
			Href:   "/german/cases?case=" + string(c),
			Active: c == active,
		})
	}
	return s.body("cases", struct {
		Tabs    []tab
		Info    grammar.CaseInfo
		Columns []grammar.ArticleType
		Rows    []tableRow
	}{tabs, info, grammar.ArticleTypes, rows})
}

// AdjectivesBody renders the adjective-endings browser keyed by
// article type. Unknown type falls back to the first.
func (s *Shell) AdjectivesBody(typeParam string) (template.HTML, error) {
	active := grammar.ParseArticleType(typeParam)

	var rows []tableRow
	for _, c := range grammar.Cases {
		row := tableRow{Header: string(c)}
		for _, g := range grammar.Genders {
			cell, ok := grammar.LookupEnding(c, g, active)
			if !ok {
				cell = ""
			}
			row.Cells = append(row.Cells, cell)
		}
		rows = append(rows, row)
	}

	type tab struct {
		Name   string
		Href   string
		Active bool
	}
	var tabs []tab
	for _, at := range grammar.ArticleTypes {
		tabs = append(tabs, tab{
			Name:   string(at),
			Href:   "/german/adjectives?type=" + string(at),
			Active: at == active,
		})
	}
	return s.body("adjectives", struct {
		Tabs    []tab
		Columns []grammar.Gender
		Rows    []tableRow
	}{tabs, grammar.Genders, rows})
}

// vocabCard is one vocabulary entry, expanded shows the example sentence.
type vocabCard struct {
	Word       string
	Meaning    string
	Example    string
	Expanded   bool
	ToggleHref string
}

// VocabBody renders the vocabulary trainer: theme tabs, a language
// toggle backed by the stored preference, and single-select expansion.
func (s *Shell) VocabBody(lang config.Lang, themeParam, expanded string) (template.HTML, error) {
	theme := grammar.ThemeByKey(themeParam)

	var cards []vocabCard
	for _, e := range theme.Entries {
		word, meaning := e.French, e.English
		if lang == config.LangEnglish {
			word, meaning = e.English, e.French
		}
		cards = append(cards, vocabCard{
			Word:       word,
			Meaning:    meaning,
			Example:    e.Example,
			Expanded:   e.French == expanded,
			ToggleHref: vocabHref(lang, theme.Key, NextExpanded(expanded, e.French)),
		})
	}

	type tab struct {
		Name   string
		Href   string
		Active bool
	}
	themeTitle := func(t grammar.VocabTheme) string {
		if lang == config.LangFrench {
			return t.TitleFR
		}
		return t.TitleEN
	}
	var tabs []tab
	for _, t := range grammar.VocabThemes {
		tabs = append(tabs, tab{
			Name:   themeTitle(t),
			Href:   vocabHref(lang, t.Key, ""),
			Active: t.Key == theme.Key,
		})
	}
	return s.body("vocab", struct {
		Tabs       []tab
		Theme      string
		Lang       config.Lang
		ToggleHref string
		Cards      []vocabCard
	}{tabs, themeTitle(theme), lang, vocabHref(otherLang(lang), theme.Key, ""), cards})
}

func otherLang(l config.Lang) config.Lang {
	if l == config.LangFrench {
		return config.LangEnglish
	}
	return config.LangFrench
}

func vocabHref(lang config.Lang, theme, expand string) string {
	href := "/french/vocabulary?lang=" + string(lang) + "&tab=" + template.URLQueryEscaper(theme)
	if expand != "" {
		href += "&expand=" + template.URLQueryEscaper(expand)
	}
	return href
}

// verbView flattens a saved conjugation for the template.
type verbView struct {
	ID          string
	Infinitive  string
	Translation string
	Tenses      []conjugation.Tense
	Expanded    bool
	ToggleHref  string
}

// VerbsBody renders the verb lookup page: search form, optional error
// banner, and the saved list with single-select expansion.
func (s *Shell) VerbsBody(verbs []conjugation.Conjugation, lookupErr, expanded string) (template.HTML, error) {
	var views []verbView
	for _, v := range verbs {
		views = append(views, verbView{
			ID:          v.ID,
			Infinitive:  v.Infinitive,
			Translation: v.Translation,
			Tenses:      v.Tenses,
			Expanded:    v.Infinitive == expanded,
			ToggleHref:  verbHref(NextExpanded(expanded, v.Infinitive)),
		})
	}
	return s.body("verbs", struct {
		Error string
		Verbs []verbView
	}{lookupErr, views})
}

func verbHref(expand string) string {
	if expand == "" {
		return "/french/verbs"
	}
	return "/french/verbs?expand=" + template.URLQueryEscaper(expand)
}

const bodyTemplates = `
{{define "home"}}
<h1>{{.SiteName}}</h1>
<p class="lede">A field guide for backend interviews, system design, and the odd language lesson.</p>
{{range .Catalog}}
<section class="category">
  <h2>{{.Title}}</h2>
  <p class="blurb">{{.Blurb}}</p>
  <div class="topic-cards">
    {{range .Entries}}<a href="{{.Path}}">{{.Title}}</a>
    {{end}}
  </div>
</section>
{{end}}
{{end}}

{{define "topic"}}
<h1>{{.Title}}</h1>
{{if .Description}}<p class="lede">{{.Description}}</p>{{end}}
{{range .Blocks}}{{.HTML}}{{end}}
{{end}}

{{define "notfound"}}
<div class="notfound">
  <h1>Topic not found</h1>
  <p>Nothing lives at this address. Pick a topic from the sidebar instead.</p>
  <p class="debug">section: {{.Section}} &middot; topic: {{.Topic}}{{if .Err}} &middot; {{.Err}}{{end}}</p>
</div>
{{end}}

{{define "browse"}}
<h1>{{.Title}}</h1>
{{if .Description}}<p class="lede">{{.Description}}</p>{{end}}
<form class="filter-form" method="get" action="{{.Path}}">
  <input type="text" name="q" value="{{.Query}}" placeholder="Filter entries...">
</form>
<div class="cards">
  {{range .Items}}
  <div class="card expand-card">
    <h3><a href="{{.ToggleHref}}">{{.Title}}</a></h3>
    {{if .Expanded}}<div class="detail">{{.Description}}</div>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "cases"}}
<h1>The Four Cases</h1>
<p class="lede">Pick a case to see its articles and when it applies.</p>
<div class="tabs">
  {{range .Tabs}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a>{{end}}
</div>
<h2>{{.Info.Title}}</h2>
<p class="case-meta">{{.Info.Question}} &mdash; {{.Info.Description}}</p>
<div class="block">
<table>
  <thead><tr><th></th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
    {{range .Rows}}<tr><th>{{.Header}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
</div>
{{if .Info.Example}}<p><em>{{.Info.Example}}</em></p>{{end}}
{{end}}

{{define "adjectives"}}
<h1>Adjective Endings</h1>
<p class="lede">Endings by case and gender for each article type.</p>
<div class="tabs">
  {{range .Tabs}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a>{{end}}
</div>
<div class="block">
<table>
  <thead><tr><th></th>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
  <tbody>
    {{range .Rows}}<tr><th>{{.Header}}</th>{{range .Cells}}<td>{{.}}</td>{{end}}</tr>
    {{end}}
  </tbody>
</table>
</div>
{{end}}

{{define "vocab"}}
<h1>Vocabulary <a class="pill lang-toggle" href="{{.ToggleHref}}">{{.Lang}}</a></h1>
<p class="lede">Tap a word to see it in a sentence.</p>
<div class="tabs">
  {{range .Tabs}}<a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a>{{end}}
</div>
<div class="cards">
  {{range .Cards}}
  <div class="card expand-card">
    <h3><a href="{{.ToggleHref}}">{{.Word}}</a> <span class="pill">{{.Meaning}}</span></h3>
    {{if .Expanded}}<div class="detail"><em>{{.Example}}</em></div>{{end}}
  </div>
  {{end}}
</div>
{{end}}

{{define "verbs"}}
<h1>Verb Conjugations</h1>
<p class="lede">Look up a French verb and keep the ones you are drilling.</p>
<form class="filter-form" method="post" action="/french/verbs">
  <input type="text" name="verb" placeholder="Infinitive, e.g. parler">
  <button type="submit">Look up</button>
</form>
{{if .Error}}<div class="error-banner">{{.Error}}</div>{{end}}
{{if .Verbs}}
<div class="cards">
  {{range .Verbs}}
  <div class="card expand-card">
    <h3><a href="{{.ToggleHref}}">{{.Infinitive}}</a>{{if .Translation}} <span class="pill">{{.Translation}}</span>{{end}}</h3>
    {{if .Expanded}}
    <div class="detail">
      {{range .Tenses}}
      <h4>{{.Name}}</h4>
      <ul>{{range .Forms}}<li>{{.}}</li>{{end}}</ul>
      {{end}}
      <form method="post" action="/french/verbs/remove">
        <input type="hidden" name="id" value="{{.ID}}">
        <button type="submit">Remove</button>
      </form>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{else}}
<p>No saved verbs yet.</p>
{{end}}
{{end}}
`
