package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LoadDir merges documents from an on-disk content directory into the
// store. Files are matched against the include/exclude glob patterns
// (relative to dir, ** supported); an overlay document wins over a bundled
// one with the same key. This runs during assembly, before the store is
// handed to any reader.
func (s *Store) LoadDir(dir string, include, exclude []string) (int, error) {
	if dir == "" {
		return 0, nil
	}

	loaded := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}
		if matchesAny(rel, exclude) {
			return nil
		}

		key, ok := keyFromPath(rel)
		if !ok {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		doc := &Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		s.docs[key] = doc
		loaded++
		return nil
	})
	if err != nil {
		return loaded, fmt.Errorf("loading content overlay from %s: %w", dir, err)
	}
	return loaded, nil
}

// matchesAny checks rel against the given glob patterns.
func matchesAny(rel string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, rel); err == nil && ok {
			return true
		}
	}
	return false
}
