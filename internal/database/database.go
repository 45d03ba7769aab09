// Package database provides the data access layer.
//
// database.go owns the connection and migrations; per-entity repositories
// live in sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, orphan cleanup
//	├── fairytales/      # Fairytale CRUD
//	├── books/           # Book CRUD with reference resolution
//	├── authors/         # Author lookup and implicit creation
//	└── categories/      # Category lookup and implicit creation
//
// Each sub-package exposes a Repository with a *gorm.DB field and a
// NewRepository(db *gorm.DB) constructor.
package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/omelnyk/taleshelf/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Fairytale{},
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DeleteOrphanAuthors removes authors no book references.
func (d *Database) DeleteOrphanAuthors() (int64, error) {
	result := d.DB.Exec(`
		DELETE FROM authors
		WHERE id NOT IN (SELECT author_id FROM books)
	`)
	return result.RowsAffected, result.Error
}

// DeleteOrphanCategories removes categories no book references.
func (d *Database) DeleteOrphanCategories() (int64, error) {
	result := d.DB.Exec(`
		DELETE FROM categories
		WHERE id NOT IN (SELECT category_id FROM book_categories)
	`)
	return result.RowsAffected, result.Error
}
