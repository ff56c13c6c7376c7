// Package catalog owns the item list: where it comes from, how it is kept
// and how names are searched and resolved.
package catalog

import (
	"sync"

	"tftlookup/internal/domain"
)

// Source provides the item catalogue in source order
type Source interface {
	Names() []string
	Items() []domain.Item
}

// Store is an in-memory Source filled once by the loader. The loader runs
// on its own goroutine while the UI reads, hence the lock
type Store struct {
	mu    sync.RWMutex
	items []domain.Item
	names []string
}

// NewStore creates a store holding items
func NewStore(items ...domain.Item) *Store {
	s := &Store{}
	s.Replace(items)
	return s
}

// Replace swaps the whole catalogue
func (s *Store) Replace(items []domain.Item) {
	copied := make([]domain.Item, len(items))
	copy(copied, items)
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = copied
	s.names = names
}

// Names returns a copy of the item names in source order
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.names))
	copy(result, s.names)
	return result
}

// Items returns a copy of the items in source order
func (s *Store) Items() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Item, len(s.items))
	copy(result, s.items)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
