// Package memory provides an in-memory fairytale store for running
// without a database file. The repository owns its backing slice and
// serializes access with a mutex, so it is safe regardless of how
// requests are scheduled.
//
// It implements the same interface as the persisted repository:
//
//	var _ http.FairytaleStore = (*FairytaleRepository)(nil)
//
// One deliberate behavioral difference is kept from the persisted
// variant: Delete of an absent record returns entities.ErrNotFound here,
// while the database-backed repository treats it as a no-op.
package memory

import (
	"sync"

	"github.com/omelnyk/taleshelf/internal/entities"
	"github.com/omelnyk/taleshelf/internal/identity"
)

// FairytaleRepository stores fairytales in insertion order.
type FairytaleRepository struct {
	mu    sync.RWMutex
	tales []entities.Fairytale
}

// NewFairytaleRepository creates an empty in-memory repository.
func NewFairytaleRepository() *FairytaleRepository {
	return &FairytaleRepository{}
}

// Count returns the total number of stored fairytales.
func (r *FairytaleRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tales)), nil
}

// List returns one page of fairytales in insertion order.
func (r *FairytaleRepository) List(offset, limit int) ([]entities.Fairytale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.tales) || offset < 0 {
		return nil, nil
	}
	end := offset + limit
	if limit < 0 || end > len(r.tales) {
		end = len(r.tales)
	}

	page := make([]entities.Fairytale, end-offset)
	copy(page, r.tales[offset:end])
	return page, nil
}

// GetByID retrieves a single fairytale, returning entities.ErrNotFound
// when it does not exist.
func (r *FairytaleRepository) GetByID(id string) (*entities.Fairytale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.tales {
		if r.tales[i].ID == id {
			tale := r.tales[i]
			return &tale, nil
		}
	}
	return nil, entities.ErrNotFound
}

// Create appends a new fairytale, assigning an identifier when empty.
func (r *FairytaleRepository) Create(tale *entities.Fairytale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tale.ID == "" {
		tale.ID = identity.New()
	}
	r.tales = append(r.tales, *tale)
	return nil
}

// Update overwrites an existing fairytale in place.
func (r *FairytaleRepository) Update(tale *entities.Fairytale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tales {
		if r.tales[i].ID == tale.ID {
			r.tales[i] = *tale
			return nil
		}
	}
	return entities.ErrNotFound
}

// Delete removes a fairytale by id, returning entities.ErrNotFound when
// it does not exist.
func (r *FairytaleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tales {
		if r.tales[i].ID == id {
			r.tales = append(r.tales[:i], r.tales[i+1:]...)
			return nil
		}
	}
	return entities.ErrNotFound
}
