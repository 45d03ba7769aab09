// Package demo holds the starter records inserted by the seed command and
// by the in-memory storage mode.
package demo

import "github.com/omelnyk/taleshelf/internal/entities"

// Fairytales returns the starter fairytale set.
func Fairytales() []entities.Fairytale {
	return []entities.Fairytale{
		{
			ID:          "22658002-9b1e-48ed-bc4e-4aaf382bb647",
			Title:       "Fairytale 1",
			Description: "Fairytale 1 Description",
			Rating:      4,
		},
		{
			ID:          "0bee7877-bfb5-4579-8a9e-3a2d65216b1c",
			Title:       "Fairytale 2",
			Description: "Fairytale 2 Description",
			Rating:      3.1,
		},
		{
			ID:          "c8010fc3-c0ea-434a-a2cc-8db51821672c",
			Title:       "Fairytale 3",
			Description: "Fairytale 3 Description",
			Rating:      5,
		},
	}
}

// Authors returns the starter authors, keyed by name in Books below.
func Authors() []entities.Author {
	return []entities.Author{
		{Name: "Hans Christian Andersen"},
		{Name: "Astrid Lindgren"},
	}
}

// Categories returns the starter categories.
func Categories() []entities.Category {
	return []entities.Category{
		{Name: "Fantasy"},
		{Name: "Children"},
	}
}

// Book is a starter book. AuthorName and CategoryNames are resolved to
// references by the seeder.
type Book struct {
	Title         string
	Pages         int
	AuthorName    string
	CategoryNames []string
}

// Books returns the starter book set.
func Books() []Book {
	return []Book{
		{Title: "The Little Mermaid", Pages: 96, AuthorName: "Hans Christian Andersen", CategoryNames: []string{"Fantasy", "Children"}},
		{Title: "Pippi Longstocking", Pages: 160, AuthorName: "Astrid Lindgren", CategoryNames: []string{"Children"}},
	}
}
