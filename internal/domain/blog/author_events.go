package blog

import (
	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant
const AggregateTypeAuthor = "Author"

// Event type constants
const (
	EventTypeAuthorCreated = "AuthorCreated"
	EventTypeAuthorUpdated = "AuthorUpdated"
	EventTypeAuthorDeleted = "AuthorDeleted"
)

// AuthorCreatedEvent is published when a new author is created
type AuthorCreatedEvent struct {
	shared.BaseDomainEvent
	AuthorID  uuid.UUID `json:"author_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// NewAuthorCreatedEvent creates a new AuthorCreatedEvent
func NewAuthorCreatedEvent(author *Author) *AuthorCreatedEvent {
	return &AuthorCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAuthorCreated, AggregateTypeAuthor, author.ID),
		AuthorID:        author.ID,
		FirstName:       author.Name.FirstName(),
		LastName:        author.Name.LastName(),
	}
}

// AuthorUpdatedEvent is published when an author is renamed
type AuthorUpdatedEvent struct {
	shared.BaseDomainEvent
	AuthorID  uuid.UUID `json:"author_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// NewAuthorUpdatedEvent creates a new AuthorUpdatedEvent
func NewAuthorUpdatedEvent(author *Author) *AuthorUpdatedEvent {
	return &AuthorUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAuthorUpdated, AggregateTypeAuthor, author.ID),
		AuthorID:        author.ID,
		FirstName:       author.Name.FirstName(),
		LastName:        author.Name.LastName(),
	}
}

// AuthorDeletedEvent is published when an author is deleted
type AuthorDeletedEvent struct {
	shared.BaseDomainEvent
	AuthorID uuid.UUID `json:"author_id"`
	FullName string    `json:"full_name"`
}

// NewAuthorDeletedEvent creates a new AuthorDeletedEvent
func NewAuthorDeletedEvent(author *Author) *AuthorDeletedEvent {
	return &AuthorDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAuthorDeleted, AggregateTypeAuthor, author.ID),
		AuthorID:        author.ID,
		FullName:        author.Name.FullName(),
	}
}
