package blog

import (
	"time"

	"github.com/blog/backend/internal/domain/blog"
	"github.com/google/uuid"
)

// =============================================================================
// Author DTOs
// =============================================================================

// CreateAuthorRequest represents a request to create a new author
type CreateAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// RenameAuthorRequest represents a request to rename an author
type RenameAuthorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthorResponse represents an author in API responses
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorSummary is the denormalized author block nested in post responses
type AuthorSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Surname string    `json:"surname"`
}

// ToAuthorResponse converts an Author aggregate to its response DTO
func ToAuthorResponse(author *blog.Author) AuthorResponse {
	return AuthorResponse{
		ID:        author.ID,
		FirstName: author.Name.FirstName(),
		LastName:  author.Name.LastName(),
		FullName:  author.Name.FullName(),
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}
}

// ToAuthorSummary converts an Author aggregate to its summary DTO
func ToAuthorSummary(author *blog.Author) *AuthorSummary {
	return &AuthorSummary{
		ID:      author.ID,
		Name:    author.Name.FirstName(),
		Surname: author.Name.LastName(),
	}
}

// =============================================================================
// Post DTOs
// =============================================================================

// CreatePostRequest represents a request to create a new post
type CreatePostRequest struct {
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
}

// UpdatePostRequest represents a request to edit a post
type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID          uuid.UUID      `json:"id"`
	AuthorID    uuid.UUID      `json:"author_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Content     string         `json:"content"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
	Author      *AuthorSummary `json:"author,omitempty"`
}

// ToPostResponse converts a Post aggregate to its response DTO.
// The author summary is attached when the author is provided.
func ToPostResponse(post *blog.Post, author *blog.Author) PostResponse {
	resp := PostResponse{
		ID:          post.ID,
		AuthorID:    post.AuthorID.UUID(),
		Title:       post.Title.Value(),
		Description: post.Description.Value(),
		Content:     post.Content.Value(),
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.EditedAt,
	}
	if author != nil {
		resp.Author = ToAuthorSummary(author)
	}
	return resp
}
