// Package gallery holds the session-scoped collection of generated assets.
// Nothing is persisted: the gallery starts empty and is discarded with the
// process.
package gallery

import (
	"sync"

	"designgenius/internal/domain"
)

// Store is an ordered, in-memory asset collection. Iteration order is
// newest-first and at most one asset is selected for preview at a time.
type Store struct {
	mu       sync.Mutex
	assets   []domain.GeneratedAsset
	selected string
}

// NewStore returns an empty gallery.
func NewStore() *Store {
	return &Store{}
}

// Insert prepends the asset. Ids are expected to be unique for the lifetime
// of the store; a colliding id is rejected rather than silently overwritten.
func (s *Store) Insert(asset domain.GeneratedAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.assets {
		if existing.ID == asset.ID {
			return domain.ErrDuplicateAsset
		}
	}
	s.assets = append([]domain.GeneratedAsset{asset}, s.assets...)
	return nil
}

// Remove deletes the asset with the given id. A missing id is a no-op.
// Removing the selected asset clears the selection.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, asset := range s.assets {
		if asset.ID == id {
			s.assets = append(s.assets[:i], s.assets[i+1:]...)
			if s.selected == id {
				s.selected = ""
			}
			return
		}
	}
}

// Select marks the asset with the given id as the current preview.
func (s *Store) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, asset := range s.assets {
		if asset.ID == id {
			s.selected = id
			return nil
		}
	}
	return domain.ErrNotFound
}

// Deselect clears the current preview selection.
func (s *Store) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// Selected returns the currently previewed asset, if any.
func (s *Store) Selected() (domain.GeneratedAsset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == "" {
		return domain.GeneratedAsset{}, false
	}
	for _, asset := range s.assets {
		if asset.ID == s.selected {
			return asset, true
		}
	}
	return domain.GeneratedAsset{}, false
}

// Get returns the asset with the given id.
func (s *Store) Get(id string) (domain.GeneratedAsset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, asset := range s.assets {
		if asset.ID == id {
			return asset, true
		}
	}
	return domain.GeneratedAsset{}, false
}

// List returns a copy of the gallery, newest first.
func (s *Store) List() []domain.GeneratedAsset {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.GeneratedAsset, len(s.assets))
	copy(out, s.assets)
	return out
}

// Len reports how many assets the gallery holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.assets)
}
