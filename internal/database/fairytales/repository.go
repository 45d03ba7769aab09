// Package fairytales provides database operations for fairytale records.
//
// The Repository implements the http.FairytaleStore interface:
//
//	var _ http.FairytaleStore = (*Repository)(nil)
package fairytales

import (
	"errors"

	"gorm.io/gorm"

	"github.com/omelnyk/taleshelf/internal/entities"
)

// Repository handles fairytale database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new fairytales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the total number of fairytale records.
func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Fairytale{}).Count(&total).Error
	return total, err
}

// List returns one page of fairytales in insertion order.
func (r *Repository) List(offset, limit int) ([]entities.Fairytale, error) {
	var tales []entities.Fairytale
	err := r.db.Order("created_at").Offset(offset).Limit(limit).Find(&tales).Error
	return tales, err
}

// GetByID retrieves a single fairytale, returning entities.ErrNotFound
// when it does not exist.
func (r *Repository) GetByID(id string) (*entities.Fairytale, error) {
	var tale entities.Fairytale
	err := r.db.First(&tale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tale, nil
}

// Create persists a new fairytale. The identifier is assigned on insert
// when empty.
func (r *Repository) Create(tale *entities.Fairytale) error {
	return r.db.Create(tale).Error
}

// Update overwrites all fields of an existing fairytale.
func (r *Repository) Update(tale *entities.Fairytale) error {
	return r.db.Save(tale).Error
}

// Delete removes a fairytale by id. Deleting an id that does not exist is
// not an error.
func (r *Repository) Delete(id string) error {
	return r.db.Delete(&entities.Fairytale{}, "id = ?", id).Error
}
