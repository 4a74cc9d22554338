package blog

import (
	"context"
	"errors"

	"github.com/blog/backend/internal/domain/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostService handles post-related business operations
type PostService struct {
	postRepo   blog.PostRepository
	authorRepo blog.AuthorRepository
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewPostService creates a new PostService
func NewPostService(postRepo blog.PostRepository, authorRepo blog.AuthorRepository, publisher shared.EventPublisher, logger *zap.Logger) *PostService {
	return &PostService{
		postRepo:   postRepo,
		authorRepo: authorRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

// Create creates a new post for an existing author
func (s *PostService) Create(ctx context.Context, req CreatePostRequest) (*PostResponse, error) {
	authorID, err := blog.AuthorIDFrom(req.AuthorID)
	if err != nil {
		return nil, err
	}

	exists, err := s.authorRepo.ExistsByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Author not found")
	}

	post, err := blog.NewPost(authorID, req.Title, req.Description, req.Content)
	if err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	s.dispatchEvents(ctx, post)

	response := ToPostResponse(post, nil)
	return &response, nil
}

// GetByID retrieves a post by ID with its author summary attached
func (s *PostService) GetByID(ctx context.Context, postID uuid.UUID) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	author, err := s.authorRepo.FindByID(ctx, post.AuthorID.UUID())
	if err != nil {
		// A dangling author reference is tolerated in reads: the post is
		// still served, just without the nested summary.
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		author = nil
	}

	response := ToPostResponse(post, author)
	return &response, nil
}

// List retrieves a page of posts
func (s *PostService) List(ctx context.Context, filter shared.Filter) ([]PostResponse, int64, error) {
	filter = filter.Normalize()

	posts, err := s.postRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.postRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = ToPostResponse(&posts[i], nil)
	}
	return responses, total, nil
}

// ListByAuthor retrieves a page of posts written by the given author
func (s *PostService) ListByAuthor(ctx context.Context, authorID uuid.UUID, filter shared.Filter) ([]PostResponse, int64, error) {
	exists, err := s.authorRepo.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, shared.NewDomainError("NOT_FOUND", "Author not found")
	}

	filter = filter.Normalize()

	posts, err := s.postRepo.FindByAuthor(ctx, authorID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, authorID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = ToPostResponse(&posts[i], nil)
	}
	return responses, total, nil
}

// Update edits a post's title, description and content
func (s *PostService) Update(ctx context.Context, postID uuid.UUID, req UpdatePostRequest) (*PostResponse, error) {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := post.Update(req.Title, req.Description, req.Content); err != nil {
		return nil, err
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, err
	}

	s.dispatchEvents(ctx, post)

	response := ToPostResponse(post, nil)
	return &response, nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, postID uuid.UUID) error {
	post, err := s.postRepo.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	post.AddDomainEvent(blog.NewPostDeletedEvent(post))
	s.dispatchEvents(ctx, post)

	return nil
}

// dispatchEvents publishes the aggregate's pending events and clears them
func (s *PostService) dispatchEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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
