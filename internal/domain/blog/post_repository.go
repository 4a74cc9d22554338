package blog

import (
	"context"

	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PostRepository defines the interface for post persistence
type PostRepository interface {
	// FindByID finds a post by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// FindAll finds all posts matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Post, error)

	// FindByAuthor finds all posts written by the given author
	FindByAuthor(ctx context.Context, authorID uuid.UUID, filter shared.Filter) ([]Post, error)

	// Save creates or updates a post
	Save(ctx context.Context, post *Post) error

	// Delete removes a post by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAuthor removes all posts written by the given author
	DeleteByAuthor(ctx context.Context, authorID uuid.UUID) error

	// Count counts posts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByAuthor counts posts written by the given author
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}
