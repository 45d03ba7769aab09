// Package categories provides database operations for category records.
package categories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/omelnyk/taleshelf/internal/entities"
)

// Repository handles category database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new categories repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByNames returns the categories whose names match the given list.
// Names with no matching record are silently dropped.
func (r *Repository) FindByNames(names []string) ([]entities.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var cats []entities.Category
	err := r.db.Where("name IN ?", names).Find(&cats).Error
	return cats, err
}

// GetOrCreateByName retrieves the first category with the given name,
// creating one when none exists. Not atomic, same caveat as
// authors.GetOrCreateByName.
func (r *Repository) GetOrCreateByName(name string) (*entities.Category, error) {
	var cat entities.Category
	err := r.db.Where("name = ?", name).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		created := &entities.Category{Name: name}
		if err := r.db.Create(created).Error; err != nil {
			return nil, err
		}
		return created, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// List returns all categories.
func (r *Repository) List() ([]entities.Category, error) {
	var cats []entities.Category
	err := r.db.Order("created_at").Find(&cats).Error
	return cats, err
}
