package blog

import (
	"context"

	"github.com/blog/backend/internal/domain/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthorService handles author-related business operations
type AuthorService struct {
	authorRepo blog.AuthorRepository
	postRepo   blog.PostRepository
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewAuthorService creates a new AuthorService
func NewAuthorService(authorRepo blog.AuthorRepository, postRepo blog.PostRepository, publisher shared.EventPublisher, logger *zap.Logger) *AuthorService {
	return &AuthorService{
		authorRepo: authorRepo,
		postRepo:   postRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create creates a new author
func (s *AuthorService) Create(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	author, err := blog.NewAuthor(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if err := s.authorRepo.Save(ctx, author); err != nil {
		return nil, err
	}

	s.dispatchEvents(ctx, author)

	response := ToAuthorResponse(author)
	return &response, nil
}

// GetByID retrieves an author by ID
func (s *AuthorService) GetByID(ctx context.Context, authorID uuid.UUID) (*AuthorResponse, error) {
	author, err := s.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	response := ToAuthorResponse(author)
	return &response, nil
}

// List retrieves a page of authors
func (s *AuthorService) List(ctx context.Context, filter shared.Filter) ([]AuthorResponse, int64, error) {
	filter = filter.Normalize()

	authors, err := s.authorRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.authorRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AuthorResponse, len(authors))
	for i := range authors {
		responses[i] = ToAuthorResponse(&authors[i])
	}
	return responses, total, nil
}

// Rename changes an author's name
func (s *AuthorService) Rename(ctx context.Context, authorID uuid.UUID, req RenameAuthorRequest) (*AuthorResponse, error) {
	author, err := s.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := author.Rename(req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	if err := s.authorRepo.Save(ctx, author); err != nil {
		return nil, err
	}

	s.dispatchEvents(ctx, author)

	response := ToAuthorResponse(author)
	return &response, nil
}

// Delete removes an author together with all their posts
func (s *AuthorService) Delete(ctx context.Context, authorID uuid.UUID) error {
	author, err := s.authorRepo.FindByID(ctx, authorID)
	if err != nil {
		return err
	}

	if err := s.postRepo.DeleteByAuthor(ctx, authorID); err != nil {
		return err
	}
	if err := s.authorRepo.Delete(ctx, authorID); err != nil {
		return err
	}

	author.AddDomainEvent(blog.NewAuthorDeletedEvent(author))
	s.dispatchEvents(ctx, author)

	return nil
}

// dispatchEvents publishes the aggregate's pending events and clears them.
// The bus is in-memory and best effort; failures are logged, not surfaced.
func (s *AuthorService) dispatchEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("failed to publish domain events",
				zap.String("aggregate_id", aggregate.GetID().String()),
				zap.Error(err),
			)
		}
	}
	aggregate.ClearDomainEvents()
}
