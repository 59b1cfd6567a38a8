package wordlist

import (
	"context"
	"slices"
	"sync"

	"github.com/heartmarshall/lexicology-backend/internal/domain"
)

// Store keeps the active word list in memory, in list order.
type Store struct {
	mu    sync.RWMutex
	words []domain.WordRecord
}

// NewStore creates a Store holding words.
func NewStore(words []domain.WordRecord) *Store {
	return &Store{words: slices.Clone(words)}
}

// Words returns a copy of the list.
func (s *Store) Words(_ context.Context) ([]domain.WordRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := slices.Clone(s.words)
	if out == nil {
		out = []domain.WordRecord{}
	}
	return out, nil
}

// Replace swaps the list.
func (s *Store) Replace(words []domain.WordRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = slices.Clone(words)
}
