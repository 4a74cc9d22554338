package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthor(t *testing.T) {
	t.Run("creates author successfully", func(t *testing.T) {
		author, err := NewAuthor("Albert", "Blanco")

		require.NoError(t, err)
		assert.NotNil(t, author)
		assert.False(t, author.AuthorID().IsZero())
		assert.Equal(t, "Albert Blanco", author.Name.FullName())
		assert.Equal(t, 1, author.GetVersion())
		assert.False(t, author.CreatedAt.IsZero())

		events := author.GetDomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(*AuthorCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, EventTypeAuthorCreated, created.EventType())
		assert.Equal(t, AggregateTypeAuthor, created.AggregateType())
		assert.Equal(t, author.ID, created.AggregateID())
		assert.Equal(t, "Albert", created.FirstName)
		assert.Equal(t, "Blanco", created.LastName)
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		a, err := NewAuthor("Albert", "Blanco")
		require.NoError(t, err)
		b, err := NewAuthor("Albert", "Blanco")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("propagates first validation failure", func(t *testing.T) {
		author, err := NewAuthor("", "Blanco")

		assert.Nil(t, author)
		require.Error(t, err)
		assert.Equal(t, "First name cannot be empty or whitespace.", err.Error())
	})

	t.Run("propagates length failure", func(t *testing.T) {
		author, err := NewAuthor(strings.Repeat("a", MaxFirstNameLength+1), "Blanco")

		assert.Nil(t, author)
		require.Error(t, err)
		assert.Equal(t, "First name cannot exceed 100 characters.", err.Error())
	})
}

func TestAuthorRename(t *testing.T) {
	t.Run("renames and queues event", func(t *testing.T) {
		author, err := NewAuthor("Albert", "Blanco")
		require.NoError(t, err)
		author.ClearDomainEvents()

		err = author.Rename("Marta", "Soler")

		require.NoError(t, err)
		assert.Equal(t, "Marta Soler", author.Name.FullName())
		assert.Equal(t, 2, author.GetVersion())

		events := author.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeAuthorUpdated, events[0].EventType())
	})

	t.Run("leaves author untouched on failure", func(t *testing.T) {
		author, err := NewAuthor("Albert", "Blanco")
		require.NoError(t, err)
		author.ClearDomainEvents()

		err = author.Rename("Marta", "   ")

		require.Error(t, err)
		assert.Equal(t, "Last name cannot be empty or whitespace.", err.Error())
		assert.Equal(t, "Albert Blanco", author.Name.FullName())
		assert.Equal(t, 1, author.GetVersion())
		assert.Empty(t, author.GetDomainEvents())
	})
}

func TestReconstituteAuthor(t *testing.T) {
	t.Run("rebuilds without events", func(t *testing.T) {
		id := uuid.New()
		created := time.Now().Add(-time.Hour)
		updated := time.Now()

		author, err := ReconstituteAuthor(id, "Albert", "Blanco", created, updated, 3)

		require.NoError(t, err)
		assert.Equal(t, id, author.ID)
		assert.Equal(t, created, author.CreatedAt)
		assert.Equal(t, updated, author.UpdatedAt)
		assert.Equal(t, 3, author.GetVersion())
		assert.Empty(t, author.GetDomainEvents())
	})

	t.Run("fails on invalid stored name", func(t *testing.T) {
		_, err := ReconstituteAuthor(uuid.New(), "", "Blanco", time.Now(), time.Now(), 1)

		require.Error(t, err)
		assert.Equal(t, "First name cannot be empty or whitespace.", err.Error())
	})

	t.Run("fails on empty stored id", func(t *testing.T) {
		_, err := ReconstituteAuthor(uuid.Nil, "Albert", "Blanco", time.Now(), time.Now(), 1)

		require.Error(t, err)
		assert.Equal(t, "Author id cannot be empty.", err.Error())
	})
}
