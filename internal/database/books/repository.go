// Package books provides database operations for book records, including
// resolution of author and category references at read time.
//
// The Repository implements the http.BookStore interface:
//
//	var _ http.BookStore = (*Repository)(nil)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/omelnyk/taleshelf/internal/entities"
)

// Repository handles book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Count returns the total number of book records.
func (r *Repository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entities.Book{}).Count(&total).Error
	return total, err
}

// List returns one page of books in insertion order with author and
// categories resolved.
func (r *Repository) List(offset, limit int) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Preload("Author").
		Preload("Categories").
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&books).Error
	return books, err
}

// GetByID retrieves a single book with author and categories resolved,
// returning entities.ErrNotFound when it does not exist.
func (r *Repository) GetByID(id string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.
		Preload("Author").
		Preload("Categories").
		First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Create persists a new book. The author reference must already be set.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Omit("Author", "Categories").Create(book).Error
}

// Update overwrites the book's own fields. Category references are
// managed separately through ReplaceCategories.
func (r *Repository) Update(book *entities.Book) error {
	return r.db.Omit("Author", "Categories").Save(book).Error
}

// ReplaceCategories replaces the book's category references wholesale.
// The join table collapses duplicate references.
func (r *Repository) ReplaceCategories(book *entities.Book, cats []entities.Category) error {
	if err := r.db.Model(book).Association("Categories").Replace(cats); err != nil {
		return err
	}
	book.Categories = cats
	return nil
}

// Delete removes a book by id. Deleting an id that does not exist is not
// an error.
func (r *Repository) Delete(id string) error {
	return r.db.Delete(&entities.Book{}, "id = ?", id).Error
}
