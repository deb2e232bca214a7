package site

import (
	"strings"

	"github.com/karimzidan/devatlas/internal/content"
)

// NextExpanded implements single-select expand/collapse: clicking the
// already-expanded item collapses it, clicking any other item expands
// that one and implicitly collapses the previous. At most one key is
// ever expanded.
func NextExpanded(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}

// FilterItems returns the list items whose title or description contains
// the query, case-insensitively. A blank query keeps everything; the
// filter is a pure function of its inputs.
func FilterItems(items []content.ListItem, query string) []content.ListItem {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}
	var out []content.ListItem
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), query) ||
			strings.Contains(strings.ToLower(it.Description), query) {
			out = append(out, it)
		}
	}
	return out
}
