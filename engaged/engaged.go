// Package engaged tracks which posts and authors have already been
// engaged with. The pipeline consumes the sets read-only; the caller
// records a new engagement only after successfully acting on a
// selected post.
package engaged

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// Sets holds the already-engaged locators and recently-engaged author
// names. Freshness and eviction policy belong to the caller.
type Sets struct {
	Locators map[string]bool
	Authors  map[string]bool
}

// NewSets returns empty sets.
func NewSets() *Sets {
	return &Sets{
		Locators: make(map[string]bool),
		Authors:  make(map[string]bool),
	}
}

// Mark records an engagement with a post and its author.
func (s *Sets) Mark(locator, author string) {
	if locator != "" {
		s.Locators[locator] = true
	}
	if author != "" {
		s.Authors[author] = true
	}
}

// fileFormat is the on-disk shape; sorted lists keep diffs stable.
type fileFormat struct {
	Locators []string `json:"locators"`
	Authors  []string `json:"authors"`
}

// Load reads sets from a JSON file. A missing file yields empty sets,
// not an error: the first run has no history.
func Load(path string) (*Sets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSets(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read engaged sets: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse engaged sets %s: %w", path, err)
	}

	s := NewSets()
	for _, l := range f.Locators {
		s.Locators[l] = true
	}
	for _, a := range f.Authors {
		s.Authors[a] = true
	}
	return s, nil
}

// Save writes the sets to a JSON file.
func (s *Sets) Save(path string) error {
	f := fileFormat{
		Locators: sortedKeys(s.Locators),
		Authors:  sortedKeys(s.Authors),
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("encode engaged sets: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write engaged sets: %w", err)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
