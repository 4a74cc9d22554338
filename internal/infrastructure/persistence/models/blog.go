package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/blog/backend/internal/domain/blog"
)

// AuthorModel is the persistence representation of a blog author
type AuthorModel struct {
	AggregateModel
	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
}

// TableName overrides the table name
func (AuthorModel) TableName() string {
	return "authors"
}

// ToDomain converts the model back into a domain author. Stored rows that
// no longer satisfy domain invariants surface as an error here.
func (m *AuthorModel) ToDomain() (*blog.Author, error) {
	return blog.ReconstituteAuthor(m.ID, m.FirstName, m.LastName, m.CreatedAt, m.UpdatedAt, m.Version)
}

// AuthorModelFromDomain converts a domain author into its persistence model
func AuthorModelFromDomain(author *blog.Author) *AuthorModel {
	model := &AuthorModel{
		FirstName: author.Name.FirstName(),
		LastName:  author.Name.LastName(),
	}
	model.ID = author.ID
	model.CreatedAt = author.CreatedAt
	model.UpdatedAt = author.UpdatedAt
	model.Version = author.Version
	return model
}

// PostModel is the persistence representation of a blog post.
// EditedAt stays NULL until the post is updated for the first time.
type PostModel struct {
	AggregateModel
	AuthorID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:varchar(500);not null"`
	Content     string     `gorm:"type:text;not null"`
	EditedAt    *time.Time `gorm:""`
}

// TableName overrides the table name
func (PostModel) TableName() string {
	return "posts"
}

// ToDomain converts the model back into a domain post
func (m *PostModel) ToDomain() (*blog.Post, error) {
	return blog.ReconstitutePost(m.ID, m.AuthorID, m.Title, m.Description, m.Content, m.CreatedAt, m.EditedAt, m.Version)
}

// PostModelFromDomain converts a domain post into its persistence model
func PostModelFromDomain(post *blog.Post) *PostModel {
	model := &PostModel{
		AuthorID:    post.AuthorID.UUID(),
		Title:       post.Title.String(),
		Description: post.Description.String(),
		Content:     post.Content.String(),
		EditedAt:    post.EditedAt,
	}
	model.ID = post.ID
	model.CreatedAt = post.CreatedAt
	model.UpdatedAt = post.UpdatedAt
	model.Version = post.Version
	return model
}
