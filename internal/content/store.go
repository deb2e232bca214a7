package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed documents
var bundled embed.FS

// ErrNotFound is returned by Store.Get for keys with no document. It is a
// normal outcome, not an application error: navigation turns it into a
// "topic not found" page.
var ErrNotFound = errors.New("topic not found")

// Store is an immutable map from (section, topic) to a document,
// assembled once at startup from the bundled content files. It is never
// mutated after assembly and is safe for concurrent reads.
type Store struct {
	docs map[TopicKey]*Document
}

// NewStore loads every bundled document into a Store.
func NewStore() (*Store, error) {
	s := &Store{docs: make(map[TopicKey]*Document)}
	err := fs.WalkDir(bundled, "documents", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		data, err := bundled.ReadFile(p)
		if err != nil {
			return err
		}
		key, ok := keyFromPath(strings.TrimPrefix(p, "documents/"))
		if !ok {
			return nil
		}
		doc := &Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		s.docs[key] = doc
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading bundled content: %w", err)
	}
	return s, nil
}

// keyFromPath maps "java/collections.json" to {java, collections}.
// Files not exactly one level deep are ignored.
func keyFromPath(rel string) (TopicKey, bool) {
	rel = path.Clean(rel)
	dir, file := path.Split(rel)
	dir = strings.Trim(dir, "/")
	if dir == "" || strings.Contains(dir, "/") {
		return TopicKey{}, false
	}
	return TopicKey{Section: dir, Topic: strings.TrimSuffix(file, ".json")}, true
}

// Get returns the document for the given key, or ErrNotFound (wrapped
// with the key) when no document exists. It never panics for unknown keys.
func (s *Store) Get(section, topic string) (*Document, error) {
	doc, ok := s.docs[TopicKey{Section: section, Topic: topic}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, section, topic)
	}
	return doc, nil
}

// Has reports whether a document exists for the given key.
func (s *Store) Has(section, topic string) bool {
	_, ok := s.docs[TopicKey{Section: section, Topic: topic}]
	return ok
}

// Len returns the number of loaded documents.
func (s *Store) Len() int { return len(s.docs) }

// Keys returns every key in the store, in no particular order.
func (s *Store) Keys() []TopicKey {
	keys := make([]TopicKey, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, k)
	}
	return keys
}
