// Package catalog holds the immutable in-memory paper catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redreamality/benchmark-papers/internal/domain/paper"
)

// Store is the frozen record store: populated once at load, read-only
// afterwards, and shared by every component without synchronization.
type Store struct {
	papers []paper.Paper
	byID   map[int]paper.Paper
}

// New creates a store over the given papers, preserving their order as
// the canonical catalog order. The slice is copied; later mutation of
// the argument does not affect the store.
func New(papers []paper.Paper) *Store {
	s := &Store{
		papers: make([]paper.Paper, len(papers)),
		byID:   make(map[int]paper.Paper, len(papers)),
	}
	copy(s.papers, papers)
	for _, p := range s.papers {
		s.byID[p.ID] = p
	}
	return s
}

// Load reads a JSON catalog file (an array of papers) and freezes it.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var papers []paper.Paper
	if err := json.Unmarshal(data, &papers); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(papers), nil
}

// All returns the catalog in canonical order. The slice is shared and
// must be treated as read-only.
func (s *Store) All() []paper.Paper { return s.papers }

// Get returns the paper with the given ID.
func (s *Store) Get(id int) (paper.Paper, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len returns the catalog size.
func (s *Store) Len() int { return len(s.papers) }
