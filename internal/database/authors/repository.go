// Package authors provides database operations for author records.
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/omelnyk/taleshelf/internal/entities"
)

// Repository handles author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new author.
func (r *Repository) Create(name string) (*entities.Author, error) {
	author := &entities.Author{Name: name}
	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// GetByID retrieves an author, returning entities.ErrNotFound when absent.
func (r *Repository) GetByID(id string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// GetOrCreateByName retrieves the first author with the given name,
// creating one when none exists. The lookup-then-insert sequence is not
// atomic; concurrent updates naming the same unknown author can each
// create a record.
func (r *Repository) GetOrCreateByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.Create(name)
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// List returns all authors.
func (r *Repository) List() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("created_at").Find(&authors).Error
	return authors, err
}
