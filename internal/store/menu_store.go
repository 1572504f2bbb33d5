package store

import (
	"sync"

	"la-carta/pkg/models"
)

// MenuStore keeps the catalog in memory and rewrites the backing file on
// every mutation.
type MenuStore struct {
	mu    sync.Mutex
	path  string
	items []models.MenuItem
}

// OpenMenuStore loads the catalog file, creating it empty when absent.
func OpenMenuStore(path string) (*MenuStore, error) {
	items, err := loadOrInit[models.MenuItem](path)
	if err != nil {
		return nil, err
	}
	return &MenuStore{path: path, items: items}, nil
}

func (s *MenuStore) List() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MenuStore) Get(id int64) (models.MenuItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Add appends the item and persists the catalog. The in-memory append is
// kept even when the write fails.
func (s *MenuStore) Add(item models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, item)
	return writeJSON(s.path, s.items)
}

// Replace swaps the stored record with the same id and persists the catalog.
func (s *MenuStore) Replace(item models.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return writeJSON(s.path, s.items)
		}
	}
	return ErrMenuItemNotFound
}

// Delete removes the record with the given id. Deleting an absent id is not
// an error; the catalog is simply rewritten as-is.
func (s *MenuStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return writeJSON(s.path, s.items)
}
