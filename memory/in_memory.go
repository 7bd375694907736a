package memory

import (
	"strings"
	"sync"

	"github.com/agentloop/agentloop/core"
)

// InMemoryStore is a volatile keyword store, useful for tests and short
// lived sessions where persistence is not wanted.
type InMemoryStore struct {
	mu     sync.RWMutex
	items  []core.MemoryHit
	nextID int64
}

var _ core.MemoryStore = (*InMemoryStore)(nil)

// NewInMemoryStore creates an empty volatile store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{nextID: 1}
}

// Add implements core.MemoryStore. It returns the number of items stored.
func (s *InMemoryStore) Add(items []core.MemoryItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range items {
		s.items = append(s.items, core.MemoryHit{
			ID:   s.nextID,
			Kind: it.Kind,
			Text: it.Text,
		})
		s.nextID++
	}
	return len(items), nil
}

// Search implements core.MemoryStore. Matching is a case-insensitive
// substring test against the item text; results come back newest-first.
func (s *InMemoryStore) Search(query string, limit int) ([]core.MemoryHit, error) {
	if limit <= 0 {
		limit = 5
	}
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	hits := make([]core.MemoryHit, 0, limit)
	for i := len(s.items) - 1; i >= 0 && len(hits) < limit; i-- {
		if q == "" || strings.Contains(strings.ToLower(s.items[i].Text), q) {
			hits = append(hits, s.items[i])
		}
	}
	return hits, nil
}

// Len reports the number of stored items.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
