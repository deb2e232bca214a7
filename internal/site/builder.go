package site

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/progress"
	"github.com/karimzidan/devatlas/internal/render"
)

// buildConcurrency bounds parallel page renders during a static build.
const buildConcurrency = 4

// Builder writes the whole site as static files. Interactive pages are
// rendered in their default state; selection via query parameters only
// exists when the site is served live.
type Builder struct {
	store       *content.Store
	renderer    *render.Renderer
	shell       *Shell
	reporter    progress.Reporter
	defaultLang config.Lang
}

func NewBuilder(store *content.Store, shell *Shell, reporter progress.Reporter, defaultLang config.Lang) *Builder {
	return &Builder{
		store:       store,
		renderer:    render.New(),
		shell:       shell,
		reporter:    reporter,
		defaultLang: defaultLang,
	}
}

// Build renders every catalog page plus the home page into outDir and
// writes the assets and the client search index alongside them.
func (b *Builder) Build(outDir string) error {
	entries := content.AllEntries()
	total := len(entries) + 1 // + home
	b.reporter.Start(total)
	defer b.reporter.Finish()

	var done atomic.Int64
	step := func(label string) {
		b.reporter.Update(int(done.Add(1)), label)
	}

	var g errgroup.Group
	g.SetLimit(buildConcurrency)

	g.Go(func() error {
		body, err := b.shell.HomeBody()
		if err != nil {
			return err
		}
		if err := b.writePage(outDir, "index.html", "Home", "/", body); err != nil {
			return err
		}
		step("home")
		return nil
	})

	for _, e := range entries {
		g.Go(func() error {
			body, err := b.bodyFor(e)
			if err != nil {
				return fmt.Errorf("%s: %w", e.Path, err)
			}
			rel := filepath.Join(filepath.FromSlash(e.Path), "index.html")
			if err := b.writePage(outDir, rel, e.Title, e.Path, body); err != nil {
				return err
			}
			step(e.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return b.writeAssets(outDir)
}

// bodyFor picks the right body builder for one catalog entry. The
// interactive pages get their default selection; everything else comes
// from the bundled document store.
func (b *Builder) bodyFor(e content.CatalogEntry) (template.HTML, error) {
	switch e.Path {
	case "/german/cases":
		return b.shell.CasesBody("")
	case "/german/adjectives":
		return b.shell.AdjectivesBody("")
	case "/french/vocabulary":
		return b.shell.VocabBody(b.defaultLang, "", "")
	case "/french/verbs":
		return b.shell.VerbsBody(nil, "", "")
	case "/process/scrum", "/architecture/review":
		section, topic, _ := content.SplitPath(e.Path)
		doc, err := b.store.Get(section, topic)
		if err != nil {
			return "", err
		}
		return b.shell.BrowseBody(doc, e.Path, "", "")
	default:
		section, topic, ok := content.SplitPath(e.Path)
		if !ok {
			return "", fmt.Errorf("malformed catalog path %q", e.Path)
		}
		doc, err := b.store.Get(section, topic)
		if err != nil {
			return "", err
		}
		page, err := b.renderer.Render(doc)
		if err != nil {
			return "", err
		}
		return b.shell.TopicBody(&page)
	}
}

func (b *Builder) writePage(outDir, rel, title, activePath string, body template.HTML) error {
	dst := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := b.shell.RenderPage(f, title, activePath, "/", body); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", rel, err)
	}
	return f.Close()
}

// searchIndexEntry mirrors the rows /api/search returns so the shipped
// script can run the same lookup offline.
type searchIndexEntry struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Category string `json:"category"`
}

func (b *Builder) writeAssets(outDir string) error {
	if err := os.WriteFile(filepath.Join(outDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return err
	}

	var index []searchIndexEntry
	for _, e := range content.AllEntries() {
		index = append(index, searchIndexEntry{Title: e.Title, Path: e.Path, Category: e.Category})
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, "search-index.json"), data, 0o644)
}
