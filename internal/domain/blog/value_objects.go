package blog

import (
	"fmt"
	"strings"

	"github.com/blog/backend/internal/domain/shared"
)

// Maximum lengths for blog value objects
const (
	MaxFirstNameLength   = 100
	MaxLastNameLength    = 100
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxContentLength     = 10000
)

// AuthorName is a value object holding an author's first and last name.
// It is immutable and can only be built through NewAuthorName.
type AuthorName struct {
	firstName string
	lastName  string
}

// NewAuthorName validates and creates an AuthorName.
// Names are kept verbatim on success; blank or over-long input fails.
func NewAuthorName(firstName, lastName string) (AuthorName, error) {
	if strings.TrimSpace(firstName) == "" {
		return AuthorName{}, shared.NewValidationError("First name cannot be empty or whitespace.")
	}
	if len(firstName) > MaxFirstNameLength {
		return AuthorName{}, shared.NewValidationError(
			fmt.Sprintf("First name cannot exceed %d characters.", MaxFirstNameLength))
	}
	if strings.TrimSpace(lastName) == "" {
		return AuthorName{}, shared.NewValidationError("Last name cannot be empty or whitespace.")
	}
	if len(lastName) > MaxLastNameLength {
		return AuthorName{}, shared.NewValidationError(
			fmt.Sprintf("Last name cannot exceed %d characters.", MaxLastNameLength))
	}
	return AuthorName{firstName: firstName, lastName: lastName}, nil
}

// FirstName returns the first name
func (n AuthorName) FirstName() string {
	return n.firstName
}

// LastName returns the last name
func (n AuthorName) LastName() string {
	return n.lastName
}

// FullName returns "{firstName} {lastName}"
func (n AuthorName) FullName() string {
	return n.firstName + " " + n.lastName
}

// Equals returns true if both names hold identical values
func (n AuthorName) Equals(other AuthorName) bool {
	return n == other
}

// String returns the full name
func (n AuthorName) String() string {
	return n.FullName()
}

// PostTitle is a value object holding a post's title
type PostTitle struct {
	value string
}

// NewPostTitle validates and creates a PostTitle
func NewPostTitle(value string) (PostTitle, error) {
	if strings.TrimSpace(value) == "" {
		return PostTitle{}, shared.NewValidationError("Title cannot be empty or whitespace.")
	}
	if len(value) > MaxTitleLength {
		return PostTitle{}, shared.NewValidationError(
			fmt.Sprintf("Title cannot exceed %d characters.", MaxTitleLength))
	}
	return PostTitle{value: value}, nil
}

// Value returns the title text
func (t PostTitle) Value() string {
	return t.value
}

// Equals returns true if both titles hold identical values
func (t PostTitle) Equals(other PostTitle) bool {
	return t == other
}

// String returns the title text
func (t PostTitle) String() string {
	return t.value
}

// PostDescription is a value object holding a post's short description
type PostDescription struct {
	value string
}

// NewPostDescription validates and creates a PostDescription
func NewPostDescription(value string) (PostDescription, error) {
	if strings.TrimSpace(value) == "" {
		return PostDescription{}, shared.NewValidationError("Description cannot be empty or whitespace.")
	}
	if len(value) > MaxDescriptionLength {
		return PostDescription{}, shared.NewValidationError(
			fmt.Sprintf("Description cannot exceed %d characters.", MaxDescriptionLength))
	}
	return PostDescription{value: value}, nil
}

// Value returns the description text
func (d PostDescription) Value() string {
	return d.value
}

// Equals returns true if both descriptions hold identical values
func (d PostDescription) Equals(other PostDescription) bool {
	return d == other
}

// String returns the description text
func (d PostDescription) String() string {
	return d.value
}

// PostContent is a value object holding a post's body
type PostContent struct {
	value string
}

// NewPostContent validates and creates a PostContent
func NewPostContent(value string) (PostContent, error) {
	if strings.TrimSpace(value) == "" {
		return PostContent{}, shared.NewValidationError("Content cannot be empty or whitespace.")
	}
	if len(value) > MaxContentLength {
		return PostContent{}, shared.NewValidationError(
			fmt.Sprintf("Content cannot exceed %d characters.", MaxContentLength))
	}
	return PostContent{value: value}, nil
}

// Value returns the content text
func (c PostContent) Value() string {
	return c.value
}

// Equals returns true if both contents hold identical values
func (c PostContent) Equals(other PostContent) bool {
	return c == other
}

// String returns the content text
func (c PostContent) String() string {
	return c.value
}
