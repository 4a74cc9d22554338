package blog

import (
	"time"

	"github.com/blog/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Post represents a blog post.
// It is the aggregate root for post-related operations; the author is held
// as an identifier reference, never as an owned entity.
type Post struct {
	shared.BaseAggregateRoot
	AuthorID    AuthorID
	Title       PostTitle
	Description PostDescription
	Content     PostContent
	EditedAt    *time.Time // nil until the first successful edit
}

// NewPost creates a new post from raw field values.
// All value objects are validated before anything is constructed; the first
// validation failure is returned as-is.
func NewPost(authorID AuthorID, title, description, content string) (*Post, error) {
	if authorID.IsZero() {
		return nil, shared.NewValidationError("Author id cannot be empty.")
	}
	postTitle, err := NewPostTitle(title)
	if err != nil {
		return nil, err
	}
	postDescription, err := NewPostDescription(description)
	if err != nil {
		return nil, err
	}
	postContent, err := NewPostContent(content)
	if err != nil {
		return nil, err
	}

	post := &Post{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AuthorID:          authorID,
		Title:             postTitle,
		Description:       postDescription,
		Content:           postContent,
	}

	post.AddDomainEvent(NewPostCreatedEvent(post))

	return post, nil
}

// ReconstitutePost rebuilds a post from stored primitives.
// Value object validation runs again; a failure means the stored row
// violates domain invariants.
func ReconstitutePost(id, authorID uuid.UUID, title, description, content string, createdAt time.Time, editedAt *time.Time, version int) (*Post, error) {
	if _, err := PostIDFrom(id); err != nil {
		return nil, err
	}
	aid, err := AuthorIDFrom(authorID)
	if err != nil {
		return nil, err
	}
	postTitle, err := NewPostTitle(title)
	if err != nil {
		return nil, err
	}
	postDescription, err := NewPostDescription(description)
	if err != nil {
		return nil, err
	}
	postContent, err := NewPostContent(content)
	if err != nil {
		return nil, err
	}

	updatedAt := createdAt
	if editedAt != nil {
		updatedAt = *editedAt
	}

	return &Post{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        id,
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			},
			Version: version,
		},
		AuthorID:    aid,
		Title:       postTitle,
		Description: postDescription,
		Content:     postContent,
		EditedAt:    editedAt,
	}, nil
}

// PostID returns the strongly-typed identifier of the post
func (p *Post) PostID() PostID {
	return PostID{value: p.ID}
}

// Update rewrites the post's title, description and content.
// Validation of all three fields happens before any mutation, so a failed
// update leaves the post exactly as it was.
func (p *Post) Update(title, description, content string) error {
	postTitle, err := NewPostTitle(title)
	if err != nil {
		return err
	}
	postDescription, err := NewPostDescription(description)
	if err != nil {
		return err
	}
	postContent, err := NewPostContent(content)
	if err != nil {
		return err
	}

	now := time.Now()
	p.Title = postTitle
	p.Description = postDescription
	p.Content = postContent
	p.EditedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewPostUpdatedEvent(p))

	return nil
}
