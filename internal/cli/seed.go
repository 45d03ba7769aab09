package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/omelnyk/taleshelf/internal/config"
	"github.com/omelnyk/taleshelf/internal/database"
	"github.com/omelnyk/taleshelf/internal/database/authors"
	"github.com/omelnyk/taleshelf/internal/database/books"
	"github.com/omelnyk/taleshelf/internal/database/categories"
	"github.com/omelnyk/taleshelf/internal/database/fairytales"
	"github.com/omelnyk/taleshelf/internal/demo"
	"github.com/omelnyk/taleshelf/internal/entities"
)

// SeedCommand inserts the starter fairytales, books, authors, and
// categories into a database.
type SeedCommand struct {
	DatabasePath string
	Force        bool
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to seed")
	fs.BoolVar(&cmd.Force, "force", false, "Seed even when the database already holds records")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Insert starter fairytales and books into a database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	talesRepo := fairytales.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)
	authorsRepo := authors.NewRepository(db.DB)
	categoriesRepo := categories.NewRepository(db.DB)

	if !cmd.Force {
		total, err := talesRepo.Count()
		if err != nil {
			return err
		}
		if total > 0 {
			fmt.Println("Database already holds records; use -force to seed anyway.")
			return nil
		}
	}

	for _, tale := range demo.Fairytales() {
		t := tale
		if err := talesRepo.Create(&t); err != nil {
			return fmt.Errorf("failed to seed fairytale %q: %w", tale.Title, err)
		}
	}
	fmt.Printf("Seeded %d fairytales\n", len(demo.Fairytales()))

	for _, cat := range demo.Categories() {
		if _, err := categoriesRepo.GetOrCreateByName(cat.Name); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", cat.Name, err)
		}
	}

	for _, author := range demo.Authors() {
		if _, err := authorsRepo.GetOrCreateByName(author.Name); err != nil {
			return fmt.Errorf("failed to seed author %q: %w", author.Name, err)
		}
	}

	for _, b := range demo.Books() {
		author, err := authorsRepo.GetOrCreateByName(b.AuthorName)
		if err != nil {
			return fmt.Errorf("failed to seed author %q: %w", b.AuthorName, err)
		}

		book := &entities.Book{Title: b.Title, Pages: b.Pages, AuthorID: author.ID}
		if err := booksRepo.Create(book); err != nil {
			return fmt.Errorf("failed to seed book %q: %w", b.Title, err)
		}

		cats, err := categoriesRepo.FindByNames(b.CategoryNames)
		if err != nil {
			return err
		}
		if err := booksRepo.ReplaceCategories(book, cats); err != nil {
			return fmt.Errorf("failed to attach categories to %q: %w", b.Title, err)
		}
	}
	fmt.Printf("Seeded %d books\n", len(demo.Books()))

	return nil
}
