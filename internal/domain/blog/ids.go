package blog

import (
	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AuthorID is a strongly-typed identifier for Author aggregates
type AuthorID struct {
	value uuid.UUID
}

// NewAuthorID generates a new random AuthorID
func NewAuthorID() AuthorID {
	return AuthorID{value: uuid.New()}
}

// AuthorIDFrom wraps an existing UUID, rejecting the empty sentinel
func AuthorIDFrom(id uuid.UUID) (AuthorID, error) {
	if id == uuid.Nil {
		return AuthorID{}, shared.NewValidationError("Author id cannot be empty.")
	}
	return AuthorID{value: id}, nil
}

// ParseAuthorID parses an AuthorID from its string representation
func ParseAuthorID(s string) (AuthorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AuthorID{}, shared.NewValidationError("Author id is not a valid identifier.")
	}
	return AuthorIDFrom(id)
}

// UUID returns the underlying UUID
func (id AuthorID) UUID() uuid.UUID {
	return id.value
}

// IsZero returns true if the identifier is unset
func (id AuthorID) IsZero() bool {
	return id.value == uuid.Nil
}

// Equals returns true if both identifiers wrap the same UUID
func (id AuthorID) Equals(other AuthorID) bool {
	return id.value == other.value
}

// String returns the string representation of the identifier
func (id AuthorID) String() string {
	return id.value.String()
}

// PostID is a strongly-typed identifier for Post aggregates
type PostID struct {
	value uuid.UUID
}

// NewPostID generates a new random PostID
func NewPostID() PostID {
	return PostID{value: uuid.New()}
}

// PostIDFrom wraps an existing UUID, rejecting the empty sentinel
func PostIDFrom(id uuid.UUID) (PostID, error) {
	if id == uuid.Nil {
		return PostID{}, shared.NewValidationError("Post id cannot be empty.")
	}
	return PostID{value: id}, nil
}

// ParsePostID parses a PostID from its string representation
func ParsePostID(s string) (PostID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return PostID{}, shared.NewValidationError("Post id is not a valid identifier.")
	}
	return PostIDFrom(id)
}

// UUID returns the underlying UUID
func (id PostID) UUID() uuid.UUID {
	return id.value
}

// IsZero returns true if the identifier is unset
func (id PostID) IsZero() bool {
	return id.value == uuid.Nil
}

// Equals returns true if both identifiers wrap the same UUID
func (id PostID) Equals(other PostID) bool {
	return id.value == other.value
}

// String returns the string representation of the identifier
func (id PostID) String() string {
	return id.value.String()
}
