package blog

import (
	"time"

	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Author represents a blog author.
// It is the aggregate root for author-related operations.
type Author struct {
	shared.BaseAggregateRoot
	Name AuthorName
}

// NewAuthor creates a new author from raw name parts.
// Validation runs through the AuthorName factory; the first failure wins.
func NewAuthor(firstName, lastName string) (*Author, error) {
	name, err := NewAuthorName(firstName, lastName)
	if err != nil {
		return nil, err
	}

	author := &Author{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}

	author.AddDomainEvent(NewAuthorCreatedEvent(author))

	return author, nil
}

// ReconstituteAuthor rebuilds an author from stored primitives.
// It re-runs value object validation and queues no events; a failure here
// means the stored row violates domain invariants.
func ReconstituteAuthor(id uuid.UUID, firstName, lastName string, createdAt, updatedAt time.Time, version int) (*Author, error) {
	if _, err := AuthorIDFrom(id); err != nil {
		return nil, err
	}
	name, err := NewAuthorName(firstName, lastName)
	if err != nil {
		return nil, err
	}

	return &Author{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        id,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			},
			Version: version,
		},
		Name: name,
	}, nil
}

// AuthorID returns the strongly-typed identifier of the author
func (a *Author) AuthorID() AuthorID {
	return AuthorID{value: a.ID}
}

// Rename changes the author's name.
// The aggregate is left untouched when validation fails.
func (a *Author) Rename(firstName, lastName string) error {
	name, err := NewAuthorName(firstName, lastName)
	if err != nil {
		return err
	}

	a.Name = name
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAuthorUpdatedEvent(a))

	return nil
}
