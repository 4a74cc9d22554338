package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/blog/backend/internal/domain/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/blog/backend/internal/infrastructure/persistence/models"
)

func setupBlogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.AuthorModel{}, &models.PostModel{})
	require.NoError(t, err)

	return db
}

func mustNewAuthor(t *testing.T, firstName, lastName string) *blog.Author {
	author, err := blog.NewAuthor(firstName, lastName)
	require.NoError(t, err)
	author.ClearDomainEvents()
	return author
}

func TestGormAuthorRepository_SaveAndFindByID(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	author := mustNewAuthor(t, "Albert", "Blanco")
	require.NoError(t, repo.Save(ctx, author))

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, author.ID, found.ID)
	assert.Equal(t, "Albert", found.Name.FirstName())
	assert.Equal(t, "Blanco", found.Name.LastName())
	assert.Equal(t, author.Version, found.Version)
	assert.Empty(t, found.GetDomainEvents())
}

func TestGormAuthorRepository_FindByIDNotFound(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAuthorRepository_FindByIDCorruptRow(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)

	// Bypass the domain layer to write a row with a blank first name
	corrupt := &models.AuthorModel{LastName: "Blanco"}
	corrupt.ID = uuid.New()
	corrupt.Version = 1
	require.NoError(t, db.Create(corrupt).Error)

	_, err := repo.FindByID(context.Background(), corrupt.ID)
	assert.ErrorIs(t, err, shared.ErrDataCorruption)
}

func TestGormAuthorRepository_SaveUpdatesExisting(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	author := mustNewAuthor(t, "Albert", "Blanco")
	require.NoError(t, repo.Save(ctx, author))

	require.NoError(t, author.Rename("Alberto", "Blanco"))
	require.NoError(t, repo.Save(ctx, author))

	found, err := repo.FindByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alberto", found.Name.FirstName())
	assert.Equal(t, author.Version, found.Version)

	count, err := repo.Count(ctx, shared.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormAuthorRepository_FindAll(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	for _, name := range [][2]string{{"Albert", "Blanco"}, {"Maria", "Garcia"}, {"John", "Doe"}} {
		require.NoError(t, repo.Save(ctx, mustNewAuthor(t, name[0], name[1])))
	}

	t.Run("returns all with default filter", func(t *testing.T) {
		authors, err := repo.FindAll(ctx, shared.Filter{}.Normalize())
		require.NoError(t, err)
		assert.Len(t, authors, 3)
	})

	t.Run("paginates", func(t *testing.T) {
		authors, err := repo.FindAll(ctx, shared.Filter{Page: 2, PageSize: 2, OrderBy: "first_name", OrderDir: "asc"})
		require.NoError(t, err)
		assert.Len(t, authors, 1)
	})

	t.Run("searches by name", func(t *testing.T) {
		authors, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, Search: "Garcia"})
		require.NoError(t, err)
		require.Len(t, authors, 1)
		assert.Equal(t, "Maria", authors[0].Name.FirstName())
	})

	t.Run("ignores unknown sort column", func(t *testing.T) {
		authors, err := repo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 10, OrderBy: "drop table authors"})
		require.NoError(t, err)
		assert.Len(t, authors, 3)
	})
}

func TestGormAuthorRepository_Delete(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	author := mustNewAuthor(t, "Albert", "Blanco")
	require.NoError(t, repo.Save(ctx, author))

	require.NoError(t, repo.Delete(ctx, author.ID))
	assert.ErrorIs(t, repo.Delete(ctx, author.ID), shared.ErrNotFound)

	_, err := repo.FindByID(ctx, author.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAuthorRepository_ExistsByID(t *testing.T) {
	db := setupBlogTestDB(t)
	repo := NewGormAuthorRepository(db)
	ctx := context.Background()

	author := mustNewAuthor(t, "Albert", "Blanco")
	require.NoError(t, repo.Save(ctx, author))

	exists, err := repo.ExistsByID(ctx, author.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}
