// Package entities defines the persisted record types and their GORM
// mappings.
package entities

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/omelnyk/taleshelf/internal/identity"
)

// ErrNotFound is returned by every store when a record does not exist.
// Repositories translate driver-specific not-found errors into it so
// handlers can branch without knowing the storage backend.
var ErrNotFound = errors.New("record not found")

type Fairytale struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"index;size:512" json:"title"`
	Rating      float64   `json:"rating"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *Fairytale) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = identity.New()
	}
	return nil
}

type Book struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	Title      string     `gorm:"index;size:512" json:"title"`
	Pages      int        `json:"pages"`
	AuthorID   string     `gorm:"index;size:36" json:"author_id"`
	Author     Author     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories []Category `gorm:"many2many:book_categories;" json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (b *Book) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = identity.New()
	}
	return nil
}

// Author records are created implicitly when a book is submitted with an
// author value that is not a reference to an existing record.
type Author struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"index;size:256" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = identity.New()
	}
	return nil
}

// Category records are created implicitly from a book update's new
// categories field.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"index;size:256" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = identity.New()
	}
	return nil
}
