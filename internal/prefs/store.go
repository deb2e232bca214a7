// Package prefs persists per-page user preferences. The only preference
// today is the display language of the bilingual pages, keyed by page so
// the vocabulary page and the verb browser can disagree.
package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/karimzidan/devatlas/internal/config"
	"github.com/karimzidan/devatlas/internal/db"
)

// Store reads and writes page-scoped preferences.
type Store struct {
	db          *db.DB
	defaultLang config.Lang
}

// NewStore creates a preference store. defaultLang is returned for pages
// with no stored value.
func NewStore(d *db.DB, defaultLang config.Lang) *Store {
	if defaultLang == "" {
		defaultLang = config.LangEnglish
	}
	return &Store{db: d, defaultLang: defaultLang}
}

// Lang returns the stored language for a page, or the configured default
// when nothing has been stored yet.
func (s *Store) Lang(ctx context.Context, page string) (config.Lang, error) {
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT lang FROM preferences WHERE page = ?`, page,
	).Scan(&lang)
	if err == sql.ErrNoRows {
		return s.defaultLang, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading preference for %s: %w", page, err)
	}
	return config.Lang(lang), nil
}

// SetLang stores the language for a page. Last write wins.
func (s *Store) SetLang(ctx context.Context, page string, lang config.Lang) error {
	if lang != config.LangEnglish && lang != config.LangFrench {
		return fmt.Errorf("invalid language %q: must be en or fr", lang)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (page, lang, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(page) DO UPDATE SET lang = excluded.lang, updated_at = excluded.updated_at`,
		page, string(lang), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storing preference for %s: %w", page, err)
	}
	return nil
}
