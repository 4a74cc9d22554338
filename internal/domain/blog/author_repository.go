package blog

import (
	"context"

	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthorRepository defines the interface for author persistence
type AuthorRepository interface {
	// FindByID finds an author by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// FindAll finds all authors matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Author, error)

	// Save creates or updates an author
	Save(ctx context.Context, author *Author) error

	// Delete removes an author by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks whether an author with the given ID exists
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Count counts authors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
