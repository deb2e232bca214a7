package conjugation

import (
	"fmt"
	"regexp"
	"strings"
)

// frenchWord matches the letters a French infinitive can contain:
// the base alphabet, the accented set, and the joiners.
var frenchWord = regexp.MustCompile(`^[a-zàâäçéèêëîïôöùûüÿœæ' -]+$`)

// ValidateVerb checks a query against the French alphabet before any
// network round trip. The error wraps ErrInvalidInput and echoes the
// input for the inline message.
func ValidateVerb(verb string) error {
	verb = strings.TrimSpace(strings.ToLower(verb))
	if verb == "" {
		return fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	if !frenchWord.MatchString(verb) {
		return fmt.Errorf("%w: %q", ErrInvalidInput, verb)
	}
	return nil
}

// Normalize returns the canonical key form of a verb: lower-cased and
// trimmed. Duplicate suppression compares these keys exactly.
func Normalize(verb string) string {
	return strings.TrimSpace(strings.ToLower(verb))
}
