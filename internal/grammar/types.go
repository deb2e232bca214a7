// Package grammar holds the typed tables behind the language-drill pages.
// Instead of walking free-form nested objects, each browser is backed by a
// table indexed by explicit dimensions; a combination absent from the data
// renders as an empty slot, never an error.
package grammar

// Case is a German grammatical case.
type Case string

const (
	Nominative Case = "nominative"
	Accusative Case = "accusative"
	Dative     Case = "dative"
	Genitive   Case = "genitive"
)

// Cases lists the cases in teaching order.
var Cases = []Case{Nominative, Accusative, Dative, Genitive}

// Gender is a grammatical gender column. Plural rides along as a fourth
// column because that is how every textbook table lays it out.
type Gender string

const (
	Masculine Gender = "masculine"
	Feminine  Gender = "feminine"
	Neuter    Gender = "neuter"
	Plural    Gender = "plural"
)

// Genders lists the columns in table order.
var Genders = []Gender{Masculine, Feminine, Neuter, Plural}

// ArticleType selects which article paradigm a table describes.
type ArticleType string

const (
	Definite   ArticleType = "definite"
	Indefinite ArticleType = "indefinite"
	Negative   ArticleType = "negative"
)

// ArticleTypes lists the paradigms in display order.
var ArticleTypes = []ArticleType{Definite, Indefinite, Negative}

// CaseInfo describes one case for the case browser.
type CaseInfo struct {
	Case        Case
	Title       string
	Description string
	Question    string
	Example     string
}

// VocabEntry is one drill card on the bilingual vocabulary page.
type VocabEntry struct {
	French  string
	English string
	Example string
}

// VocabTheme groups vocabulary entries under one tab.
type VocabTheme struct {
	Key     string
	TitleEN string
	TitleFR string
	Entries []VocabEntry
}
