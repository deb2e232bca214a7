package conjugation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/karimzidan/devatlas/internal/db"
)

// Store keeps the saved verb list. Duplicates are suppressed by exact
// infinitive match before insertion, so fetching a verb twice leaves the
// list length unchanged.
type Store struct {
	db *db.DB
}

// NewStore creates a verb store.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// Add inserts a conjugation unless an entry with the same infinitive
// already exists. It reports whether a row was added.
func (s *Store) Add(ctx context.Context, c *Conjugation) (bool, error) {
	key := Normalize(c.Infinitive)

	var existing string
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM verbs WHERE infinitive = ?`, key,
	).Scan(&existing)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("checking for %s: %w", key, err)
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	forms, err := json.Marshal(c.Tenses)
	if err != nil {
		return false, fmt.Errorf("encoding forms for %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO verbs (id, infinitive, translation, forms, fetched_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, key, c.Translation, string(forms), time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("saving %s: %w", key, err)
	}
	return true, nil
}

// List returns every saved verb ordered by infinitive.
func (s *Store) List(ctx context.Context) ([]Conjugation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, infinitive, translation, forms FROM verbs ORDER BY infinitive`)
	if err != nil {
		return nil, fmt.Errorf("listing verbs: %w", err)
	}
	defer rows.Close()

	var verbs []Conjugation
	for rows.Next() {
		var c Conjugation
		var forms string
		if err := rows.Scan(&c.ID, &c.Infinitive, &c.Translation, &forms); err != nil {
			return nil, fmt.Errorf("scanning verb: %w", err)
		}
		if err := json.Unmarshal([]byte(forms), &c.Tenses); err != nil {
			// A corrupt row degrades to an entry without forms.
			c.Tenses = nil
		}
		verbs = append(verbs, c)
	}
	return verbs, rows.Err()
}

// Get returns one saved verb by its exact infinitive key.
func (s *Store) Get(ctx context.Context, infinitive string) (*Conjugation, error) {
	var c Conjugation
	var forms string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, infinitive, translation, forms FROM verbs WHERE infinitive = ?`,
		Normalize(infinitive),
	).Scan(&c.ID, &c.Infinitive, &c.Translation, &forms)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, infinitive)
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", infinitive, err)
	}
	if err := json.Unmarshal([]byte(forms), &c.Tenses); err != nil {
		c.Tenses = nil
	}
	return &c, nil
}

// Remove deletes a saved verb by id.
func (s *Store) Remove(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM verbs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("removing verb %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %s", ErrNotFound, id)
	}
	return nil
}

// Count returns the number of saved verbs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM verbs`).Scan(&n)
	return n, err
}
