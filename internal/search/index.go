// Package search implements type-ahead search over the topic catalog.
package search

import (
	"strings"

	"github.com/karimzidan/devatlas/internal/content"
)

// MinQueryLen is the shortest query that produces results. Shorter
// queries yield an empty result set, not an error.
const MinQueryLen = 2

// MaxResults caps how many matches a query returns.
const MaxResults = 5

// Index answers substring queries against the catalog. It is built once
// and read-only afterwards.
type Index struct {
	entries []content.CatalogEntry
}

// NewIndex builds an index over the given catalog entries, preserving
// declaration order.
func NewIndex(entries []content.CatalogEntry) *Index {
	return &Index{entries: entries}
}

// FromCatalog builds the index over the full static catalog.
func FromCatalog() *Index {
	return NewIndex(content.AllEntries())
}

// Query returns catalog entries whose title contains q, case-insensitively.
// Results come back in catalog declaration order, capped at MaxResults.
// There is no ranking beyond the cap: the first matches win.
func (ix *Index) Query(q string) []content.CatalogEntry {
	q = strings.TrimSpace(q)
	if len(q) < MinQueryLen {
		return nil
	}
	q = strings.ToLower(q)

	var results []content.CatalogEntry
	for _, e := range ix.entries {
		if strings.Contains(strings.ToLower(e.Title), q) {
			results = append(results, e)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }
