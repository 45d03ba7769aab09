package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omelnyk/taleshelf/internal/database"
	"github.com/omelnyk/taleshelf/internal/database/authors"
	"github.com/omelnyk/taleshelf/internal/database/categories"
	"github.com/omelnyk/taleshelf/internal/entities"
	"github.com/omelnyk/taleshelf/internal/identity"
)

func setupTestRepos(t *testing.T) (*Repository, *authors.Repository, *categories.Repository, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), authors.NewRepository(db.DB), categories.NewRepository(db.DB), cleanup
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, authorRepo, _, cleanup := setupTestRepos(t)
	defer cleanup()

	author, err := authorRepo.Create("J.R.R. Tolkien")
	require.NoError(t, err)

	book := &entities.Book{Title: "The Hobbit", Pages: 310, AuthorID: author.ID}
	require.NoError(t, repo.Create(book))
	assert.True(t, identity.IsValid(book.ID))

	found, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Hobbit", found.Title)
	assert.Equal(t, "J.R.R. Tolkien", found.Author.Name)
	assert.Empty(t, found.Categories)

	_, err = repo.GetByID(identity.New())
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_ListResolvesReferences(t *testing.T) {
	repo, authorRepo, catRepo, cleanup := setupTestRepos(t)
	defer cleanup()

	author, err := authorRepo.Create("J.R.R. Tolkien")
	require.NoError(t, err)
	fantasy, err := catRepo.GetOrCreateByName("Fantasy")
	require.NoError(t, err)

	book := &entities.Book{Title: "The Hobbit", Pages: 310, AuthorID: author.ID}
	require.NoError(t, repo.Create(book))
	require.NoError(t, repo.ReplaceCategories(book, []entities.Category{*fantasy}))

	list, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "J.R.R. Tolkien", list[0].Author.Name)
	require.Len(t, list[0].Categories, 1)
	assert.Equal(t, "Fantasy", list[0].Categories[0].Name)
}

func TestRepository_ReplaceCategories(t *testing.T) {
	repo, authorRepo, catRepo, cleanup := setupTestRepos(t)
	defer cleanup()

	author, err := authorRepo.Create("J.R.R. Tolkien")
	require.NoError(t, err)
	fantasy, err := catRepo.GetOrCreateByName("Fantasy")
	require.NoError(t, err)
	classics, err := catRepo.GetOrCreateByName("Classics")
	require.NoError(t, err)

	book := &entities.Book{Title: "The Hobbit", Pages: 310, AuthorID: author.ID}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.ReplaceCategories(book, []entities.Category{*fantasy}))
	require.NoError(t, repo.ReplaceCategories(book, []entities.Category{*classics}))

	found, err := repo.GetByID(book.ID)
	require.NoError(t, err)
	require.Len(t, found.Categories, 1)
	assert.Equal(t, "Classics", found.Categories[0].Name)

	// Clearing happens through an empty replacement
	require.NoError(t, repo.ReplaceCategories(book, nil))
	found, err = repo.GetByID(book.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Categories)
}

func TestRepository_Delete(t *testing.T) {
	repo, authorRepo, _, cleanup := setupTestRepos(t)
	defer cleanup()

	author, err := authorRepo.Create("J.R.R. Tolkien")
	require.NoError(t, err)

	book := &entities.Book{Title: "The Hobbit", Pages: 310, AuthorID: author.ID}
	require.NoError(t, repo.Create(book))

	require.NoError(t, repo.Delete(book.ID))
	_, err = repo.GetByID(book.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	assert.NoError(t, repo.Delete(identity.New()))
}

func TestCategoryRepository_FindByNames(t *testing.T) {
	_, _, catRepo, cleanup := setupTestRepos(t)
	defer cleanup()

	_, err := catRepo.GetOrCreateByName("Fantasy")
	require.NoError(t, err)

	found, err := catRepo.FindByNames([]string{"Fantasy", "No Such Category"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Fantasy", found[0].Name)

	found, err = catRepo.FindByNames(nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestAuthorRepository_GetOrCreateByName(t *testing.T) {
	_, authorRepo, _, cleanup := setupTestRepos(t)
	defer cleanup()

	first, err := authorRepo.GetOrCreateByName("J.R.R. Tolkien")
	require.NoError(t, err)
	second, err := authorRepo.GetOrCreateByName("J.R.R. Tolkien")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := authorRepo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
