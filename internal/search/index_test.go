package search

import (
	"testing"

	"github.com/karimzidan/devatlas/internal/content"
)

func testIndex() *Index {
	return NewIndex([]content.CatalogEntry{
		{Title: "Collections Framework", Path: "/java/collections", Category: "Java"},
		{Title: "Concurrency & Multithreading", Path: "/java/concurrency", Category: "Java"},
		{Title: "Spring Core", Path: "/spring/core", Category: "Spring"},
		{Title: "SQL Fundamentals", Path: "/databases/sql", Category: "Databases"},
	})
}

func TestQueryCaseInsensitiveSubstring(t *testing.T) {
	ix := testIndex()

	results := ix.Query("co")
	want := []string{"Collections Framework", "Concurrency & Multithreading", "Spring Core"}
	if len(results) != len(want) {
		t.Fatalf("results = %d, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Title != w {
			t.Errorf("results[%d] = %q, want %q (catalog order)", i, results[i].Title, w)
		}
	}
}

func TestQueryMinLength(t *testing.T) {
	ix := testIndex()

	// A one-character query always yields an empty result set.
	if got := ix.Query("c"); got != nil {
		t.Errorf("Query(\"c\") = %v, want empty", got)
	}
	if got := ix.Query(""); got != nil {
		t.Errorf("Query(\"\") = %v, want empty", got)
	}
	// Whitespace does not count toward the minimum.
	if got := ix.Query(" c "); got != nil {
		t.Errorf("Query(\" c \") = %v, want empty", got)
	}
}

func TestQueryCap(t *testing.T) {
	var entries []content.CatalogEntry
	titles := []string{"Core A", "Core B", "Core C", "Core D", "Core E", "Core F", "Core G"}
	for _, title := range titles {
		entries = append(entries, content.CatalogEntry{Title: title})
	}
	ix := NewIndex(entries)

	results := ix.Query("core")
	if len(results) != MaxResults {
		t.Fatalf("results = %d, want cap of %d", len(results), MaxResults)
	}
	// First five matches in declaration order win.
	for i := 0; i < MaxResults; i++ {
		if results[i].Title != titles[i] {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Title, titles[i])
		}
	}
}

func TestQueryMatchesTitleOnly(t *testing.T) {
	ix := NewIndex([]content.CatalogEntry{
		{Title: "Estimation", Path: "/process/estimation", Category: "Process with core in it"},
	})
	if got := ix.Query("core"); got != nil {
		t.Errorf("Query matched outside the title: %v", got)
	}
}

func TestQueryNoMatches(t *testing.T) {
	ix := testIndex()
	if got := ix.Query("zzzz"); got != nil {
		t.Errorf("Query(\"zzzz\") = %v, want empty", got)
	}
}
