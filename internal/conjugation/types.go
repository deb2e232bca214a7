// Package conjugation looks up French verb conjugations by scraping a
// third-party conjugation site through a public CORS proxy. The scraping
// is best-effort against an uncontrolled page layout, so the whole
// integration sits behind the narrow Lookuper interface; everything else
// in the application only sees typed results and sentinel errors.
package conjugation

import (
	"context"
	"errors"
)

// Tense is one block of conjugated forms.
type Tense struct {
	Name  string   `json:"name"`
	Forms []string `json:"forms"`
}

// Conjugation is the parsed result for one verb.
type Conjugation struct {
	ID          string  `json:"id"`
	Infinitive  string  `json:"infinitive"`
	Translation string  `json:"translation,omitempty"`
	Tenses      []Tense `json:"tenses"`
}

// Lookuper resolves a verb to its conjugation. Implementations must
// return ErrNotFound when the verb has no forms and ErrUnavailable for
// transport or parse failures, so callers can tell the two apart.
type Lookuper interface {
	Lookup(ctx context.Context, verb string) (*Conjugation, error)
}

// ErrNotFound means the site knows no conjugation for the verb.
var ErrNotFound = errors.New("verb not found")

// ErrUnavailable means the lookup failed for reasons unrelated to the
// verb itself: network errors, non-200 responses, or a page layout the
// parser no longer understands. Prior state is left untouched.
var ErrUnavailable = errors.New("conjugation service unavailable")

// ErrInvalidInput means the query contains characters outside the
// French alphabet. Surfaced inline; nothing is fetched.
var ErrInvalidInput = errors.New("not a French word")
