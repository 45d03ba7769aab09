package authors

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omelnyk/taleshelf/internal/database"
	"github.com/omelnyk/taleshelf/internal/entities"
	"github.com/omelnyk/taleshelf/internal/identity"
)

func setupTestRepo(t *testing.T) (*Repository, func()) {
	t.Helper()
	dbPath := "./test_" + t.Name() + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return NewRepository(db.DB), cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	author, err := repo.Create("Hans Christian Andersen")
	require.NoError(t, err)
	assert.True(t, identity.IsValid(author.ID))
	assert.Equal(t, "Hans Christian Andersen", author.Name)

	// Create never deduplicates; that is GetOrCreateByName's job
	again, err := repo.Create("Hans Christian Andersen")
	require.NoError(t, err)
	assert.NotEqual(t, author.ID, again.ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	author, err := repo.Create("Astrid Lindgren")
	require.NoError(t, err)

	found, err := repo.GetByID(author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Astrid Lindgren", found.Name)

	_, err = repo.GetByID(identity.New())
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_GetOrCreateByName(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	created, err := repo.GetOrCreateByName("Jane Doe")
	require.NoError(t, err)
	assert.True(t, identity.IsValid(created.ID))

	reused, err := repo.GetOrCreateByName("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, created.ID, reused.ID)

	all, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
