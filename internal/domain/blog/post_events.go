package blog

import (
	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypePost = "Post"

// Event type constants
const (
	EventTypePostCreated = "PostCreated"
	EventTypePostUpdated = "PostUpdated"
	EventTypePostDeleted = "PostDeleted"
)

// PostCreatedEvent is published when a new post is created
type PostCreatedEvent struct {
	shared.BaseDomainEvent
	PostID   uuid.UUID `json:"post_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
}

// NewPostCreatedEvent creates a new PostCreatedEvent
func NewPostCreatedEvent(post *Post) *PostCreatedEvent {
	return &PostCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePostCreated, AggregateTypePost, post.ID),
		PostID:          post.ID,
		AuthorID:        post.AuthorID.UUID(),
		Title:           post.Title.Value(),
	}
}

// PostUpdatedEvent is published when a post is edited
type PostUpdatedEvent struct {
	shared.BaseDomainEvent
	PostID uuid.UUID `json:"post_id"`
	Title  string    `json:"title"`
}

// NewPostUpdatedEvent creates a new PostUpdatedEvent
func NewPostUpdatedEvent(post *Post) *PostUpdatedEvent {
	return &PostUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePostUpdated, AggregateTypePost, post.ID),
		PostID:          post.ID,
		Title:           post.Title.Value(),
	}
}

// PostDeletedEvent is published when a post is deleted
type PostDeletedEvent struct {
	shared.BaseDomainEvent
	PostID   uuid.UUID `json:"post_id"`
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
}

// NewPostDeletedEvent creates a new PostDeletedEvent
func NewPostDeletedEvent(post *Post) *PostDeletedEvent {
	return &PostDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePostDeleted, AggregateTypePost, post.ID),
		PostID:          post.ID,
		AuthorID:        post.AuthorID.UUID(),
		Title:           post.Title.Value(),
	}
}
