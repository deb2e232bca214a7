package render

import (
	"strings"
	"testing"

	"github.com/karimzidan/devatlas/internal/content"
)

func TestRenderOneBlockPerRecognizedSection(t *testing.T) {
	doc := &content.Document{
		Title:       "Topic",
		Description: "About the topic.",
		Sections: []content.Section{
			{Type: content.SectionConcept, Title: "First", Concepts: []content.ConceptItem{{Title: "A", Description: "a"}}},
			{Type: "hologram", Title: "Future thing"},
			{Type: content.SectionList, Title: "Second", Items: []content.ListItem{{Title: "B", Description: "b", Examples: []string{"e"}}}},
			{Type: content.SectionCode, Title: "Third", Language: "go", Code: "x := 1"},
		},
	}

	r := New()
	page, err := r.Render(doc)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if page.Title != "Topic" || page.Description != "About the topic." {
		t.Errorf("page heading = %q/%q", page.Title, page.Description)
	}

	// Unrecognized section renders zero blocks; the rest render in input order.
	if len(page.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(page.Blocks))
	}
	wantKinds := []content.SectionType{content.SectionConcept, content.SectionList, content.SectionCode}
	for i, k := range wantKinds {
		if page.Blocks[i].Kind != k {
			t.Errorf("block[%d].Kind = %q, want %q", i, page.Blocks[i].Kind, k)
		}
	}
}

func TestRenderConceptBlock(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{{
			Type:  content.SectionConcept,
			Title: "Core Interfaces",
			Concepts: []content.ConceptItem{
				{Title: "List", Description: "An ordered collection."},
			},
		}},
	}

	page, err := New().Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	html := string(page.Blocks[0].HTML)
	for _, want := range []string{"Core Interfaces", "List", "An ordered collection."} {
		if !strings.Contains(html, want) {
			t.Errorf("block HTML missing %q:\n%s", want, html)
		}
	}
}

func TestRenderListPills(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{{
			Type:  content.SectionList,
			Items: []content.ListItem{{Title: "HashMap", Description: "d", Examples: []string{"caches", "indexes"}}},
		}},
	}

	page, err := New().Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	html := string(page.Blocks[0].HTML)
	if !strings.Contains(html, `<span class="pill">caches</span>`) {
		t.Errorf("missing example pill:\n%s", html)
	}
	if !strings.Contains(html, `<span class="pill">indexes</span>`) {
		t.Errorf("missing second pill:\n%s", html)
	}
}

func TestRenderCodeHighlighted(t *testing.T) {
	doc := &content.Document{
		Sections: []content.Section{{
			Type:     content.SectionCode,
			Title:    "Example",
			Language: "go",
			Code:     "func main() {}",
		}},
	}

	page, err := New().Render(doc)
	if err != nil {
		t.Fatal(err)
	}
	html := string(page.Blocks[0].HTML)
	if !strings.Contains(html, "main") {
		t.Errorf("code body missing:\n%s", html)
	}
	if !strings.Contains(html, "<pre") {
		t.Errorf("expected preformatted output:\n%s", html)
	}
}

func TestRenderDegradedSections(t *testing.T) {
	// Sections missing their required fields render empty blocks, never error.
	doc := &content.Document{
		Sections: []content.Section{
			{Type: content.SectionConcept, Title: "Empty concept"},
			{Type: content.SectionList},
			{Type: content.SectionCode},
			{Type: content.SectionTable, Title: "No rows"},
		},
	}

	page, err := New().Render(doc)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(page.Blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(page.Blocks))
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	page, err := New().Render(&content.Document{Title: "Bare"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(page.Blocks) != 0 {
		t.Errorf("blocks = %d, want 0", len(page.Blocks))
	}
}

func TestProseMarkdown(t *testing.T) {
	r := New()
	html := string(r.prose("plain with `code` span"))
	if !strings.Contains(html, "<code>code</code>") {
		t.Errorf("inline markdown not rendered: %s", html)
	}
}
