package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/conjugation"
	"github.com/karimzidan/devatlas/internal/content"
	"github.com/karimzidan/devatlas/internal/progress"
)

func TestNextExpandedSingleSelect(t *testing.T) {
	// Starting collapsed, a click expands; a second click on the same
	// item collapses; clicking another item swaps the expansion.
	state := ""
	state = NextExpanded(state, "a")
	if state != "a" {
		t.Fatalf("expand: got %q, want %q", state, "a")
	}
	state = NextExpanded(state, "b")
	if state != "b" {
		t.Fatalf("swap: got %q, want %q", state, "b")
	}
	state = NextExpanded(state, "b")
	if state != "" {
		t.Fatalf("collapse: got %q, want empty", state)
	}
}

func TestFilterItems(t *testing.T) {
	items := []content.ListItem{
		{Title: "Sprint Planning", Description: "the team commits to a goal"},
		{Title: "Daily Standup", Description: "sync on progress"},
		{Title: "Retrospective", Description: "inspect and adapt the PROCESS"},
	}

	if got := FilterItems(items, ""); len(got) != 3 {
		t.Fatalf("blank query: got %d items, want all 3", len(got))
	}
	if got := FilterItems(items, "sprint"); len(got) != 1 || got[0].Title != "Sprint Planning" {
		t.Fatalf("title match: got %v", got)
	}
	// Description matches too, case-insensitively.
	if got := FilterItems(items, "process"); len(got) != 1 || got[0].Title != "Retrospective" {
		t.Fatalf("description match: got %v", got)
	}
	if got := FilterItems(items, "kanban"); len(got) != 0 {
		t.Fatalf("no match: got %v", got)
	}
}

func TestNavHTMLActivePath(t *testing.T) {
	html := NavHTML(content.Catalog, "/java/collections", "/")
	if !strings.Contains(html, `class="active"`) {
		t.Fatal("active entry not highlighted")
	}
	if !strings.Contains(html, "Collections Framework") {
		t.Fatal("catalog titles missing from nav")
	}
	if strings.Count(html, `class="active"`) != 1 {
		t.Fatal("exactly one entry should be active")
	}
}

func TestCasesBodyFallsBackToFirstCase(t *testing.T) {
	s := NewShell("DevAtlas")
	known, err := s.CasesBody("nominative")
	if err != nil {
		t.Fatalf("CasesBody: %v", err)
	}
	fromGarbage, err := s.CasesBody("bogus")
	if err != nil {
		t.Fatalf("CasesBody fallback: %v", err)
	}
	if known != fromGarbage {
		t.Fatal("unknown case should render the first case")
	}
}

func TestVocabBodySwapsLanguages(t *testing.T) {
	s := NewShell("DevAtlas")
	en, err := s.VocabBody(config.LangEnglish, "", "")
	if err != nil {
		t.Fatalf("VocabBody en: %v", err)
	}
	fr, err := s.VocabBody(config.LangFrench, "", "")
	if err != nil {
		t.Fatalf("VocabBody fr: %v", err)
	}
	if en == fr {
		t.Fatal("language toggle should change the rendered page")
	}
}

func TestVerbsBodyShowsErrorBanner(t *testing.T) {
	s := NewShell("DevAtlas")
	body, err := s.VerbsBody(nil, "verb not found", "")
	if err != nil {
		t.Fatalf("VerbsBody: %v", err)
	}
	if !strings.Contains(string(body), "error-banner") || !strings.Contains(string(body), "verb not found") {
		t.Fatal("lookup error should render as a banner")
	}

	clean, err := s.VerbsBody([]conjugation.Conjugation{{Infinitive: "parler"}}, "", "")
	if err != nil {
		t.Fatalf("VerbsBody: %v", err)
	}
	if strings.Contains(string(clean), "error-banner") {
		t.Fatal("no banner without an error")
	}
	if !strings.Contains(string(clean), "parler") {
		t.Fatal("saved verb missing from list")
	}
}

func TestBrowseBodyFiltersAndExpands(t *testing.T) {
	s := NewShell("DevAtlas")
	doc := &content.Document{
		Title: "Scrum",
		Sections: []content.Section{
			{Type: content.SectionConcept, Concepts: []content.ConceptItem{
				{Title: "Sprint", Description: "a timebox"},
				{Title: "Backlog", Description: "ordered work"},
			}},
		},
	}

	filtered, err := s.BrowseBody(doc, "/process/scrum", "sprint", "")
	if err != nil {
		t.Fatalf("BrowseBody: %v", err)
	}
	if !strings.Contains(string(filtered), "Sprint") || strings.Contains(string(filtered), "Backlog") {
		t.Fatal("filter should keep only matching entries")
	}

	expanded, err := s.BrowseBody(doc, "/process/scrum", "", "Sprint")
	if err != nil {
		t.Fatalf("BrowseBody: %v", err)
	}
	if !strings.Contains(string(expanded), "a timebox") {
		t.Fatal("expanded entry should show its description")
	}
	if strings.Contains(string(expanded), "ordered work") {
		t.Fatal("only the clicked entry may be expanded")
	}
}

func TestBuildWritesWholeSite(t *testing.T) {
	store, err := content.NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	out := t.TempDir()

	b := NewBuilder(store, NewShell("DevAtlas"), progress.NullReporter{}, config.LangEnglish)
	if err := b.Build(out); err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, rel := range []string{
		"index.html",
		"style.css",
		"script.js",
		"search-index.json",
		filepath.Join("java", "collections", "index.html"),
		filepath.Join("german", "cases", "index.html"),
		filepath.Join("french", "verbs", "index.html"),
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing output %s: %v", rel, err)
		}
	}

	home, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read home: %v", err)
	}
	if !strings.Contains(string(home), "Collections Framework") {
		t.Error("home page should list catalog topics")
	}

	raw, err := os.ReadFile(filepath.Join(out, "search-index.json"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	var index []searchIndexEntry
	if err := json.Unmarshal(raw, &index); err != nil {
		t.Fatalf("decode index: %v", err)
	}
	if len(index) != len(content.AllEntries()) {
		t.Errorf("index has %d rows, want %d", len(index), len(content.AllEntries()))
	}
}
