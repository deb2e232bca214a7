package content

import "strings"

// CatalogEntry is one navigable topic in the catalog: the home page's
// navigation cards and the search index are both built from these.
type CatalogEntry struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Category string `json:"category"`
}

// Category groups catalog entries for the home page.
type Category struct {
	Title   string
	Slug    string
	Blurb   string
	Entries []CatalogEntry
}

// Catalog is the static, ordered list of subject categories. Declaration
// order is display order and search-result order. Adding a topic means
// adding one bundled document plus one entry here; the generic route picks
// it up with no other change.
var Catalog = []Category{
	{
		Title: "Java",
		Slug:  "java",
		Blurb: "Core language concepts, from collections to concurrency.",
		Entries: []CatalogEntry{
			{Title: "Collections Framework", Path: "/java/collections", Category: "Java"},
			{Title: "Concurrency & Multithreading", Path: "/java/concurrency", Category: "Java"},
			{Title: "Streams & Lambdas", Path: "/java/streams", Category: "Java"},
			{Title: "Exceptions & Error Handling", Path: "/java/exceptions", Category: "Java"},
		},
	},
	{
		Title: "Spring",
		Slug:  "spring",
		Blurb: "The framework's subsystems: container, data access, web.",
		Entries: []CatalogEntry{
			{Title: "Spring Core", Path: "/spring/core", Category: "Spring"},
			{Title: "Spring Data", Path: "/spring/data", Category: "Spring"},
			{Title: "Spring Web", Path: "/spring/web", Category: "Spring"},
		},
	},
	{
		Title: "Databases",
		Slug:  "databases",
		Blurb: "SQL, transactions, and when not to use either.",
		Entries: []CatalogEntry{
			{Title: "SQL Fundamentals", Path: "/databases/sql", Category: "Databases"},
			{Title: "Transactions & Isolation", Path: "/databases/transactions", Category: "Databases"},
			{Title: "NoSQL Overview", Path: "/databases/nosql", Category: "Databases"},
		},
	},
	{
		Title: "Architecture",
		Slug:  "architecture",
		Blurb: "Principles and practices for code that survives its authors.",
		Entries: []CatalogEntry{
			{Title: "SOLID Principles", Path: "/architecture/solid", Category: "Architecture"},
			{Title: "Design Patterns", Path: "/architecture/patterns", Category: "Architecture"},
			{Title: "Clean Architecture", Path: "/architecture/clean", Category: "Architecture"},
			{Title: "Code Review Guide", Path: "/architecture/review", Category: "Architecture"},
		},
	},
	{
		Title: "Process",
		Slug:  "process",
		Blurb: "Agile practices without the ceremony worship.",
		Entries: []CatalogEntry{
			{Title: "Scrum Glossary", Path: "/process/scrum", Category: "Process"},
			{Title: "Estimation Techniques", Path: "/process/estimation", Category: "Process"},
		},
	},
	{
		Title: "Languages",
		Slug:  "languages",
		Blurb: "Grammar tables and vocabulary drills for the commute.",
		Entries: []CatalogEntry{
			{Title: "German Cases", Path: "/german/cases", Category: "Languages"},
			{Title: "Adjective Endings", Path: "/german/adjectives", Category: "Languages"},
			{Title: "Verb Conjugation", Path: "/french/verbs", Category: "Languages"},
			{Title: "Vocabulary Drills", Path: "/french/vocabulary", Category: "Languages"},
		},
	},
}

// AllEntries flattens the catalog in declaration order.
func AllEntries() []CatalogEntry {
	var entries []CatalogEntry
	for _, cat := range Catalog {
		entries = append(entries, cat.Entries...)
	}
	return entries
}

// SplitPath maps a catalog path like "/java/collections" to its
// (section, topic) key. It reports false for anything not shaped as
// exactly two segments.
func SplitPath(p string) (section, topic string, ok bool) {
	p = strings.Trim(p, "/")
	parts := strings.Split(p, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
