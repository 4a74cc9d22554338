package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogapp "github.com/blog/backend/internal/application/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/blog/backend/internal/interfaces/http/dto"
)

// PostHandler handles post API endpoints
type PostHandler struct {
	BaseHandler
	postService *blogapp.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *blogapp.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create handles POST /blog/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req blogapp.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, post)
}

// Get handles GET /blog/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c, "Invalid post ID")
	if !ok {
		return
	}

	post, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// List handles GET /blog/posts
func (h *PostHandler) List(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	posts, total, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, posts, total, filter.Page, filter.PageSize)
}

// ListByAuthor handles GET /blog/authors/:id/posts
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	authorID, ok := h.parseID(c, "Invalid author ID")
	if !ok {
		return
	}
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	posts, total, err := h.postService.ListByAuthor(c.Request.Context(), authorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, posts, total, filter.Page, filter.PageSize)
}

// Update handles PUT /blog/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, "Invalid post ID")
	if !ok {
		return
	}

	var req blogapp.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// Delete handles DELETE /blog/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "Invalid post ID")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *PostHandler) parseID(c *gin.Context, message string) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, message)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, message)
		return uuid.Nil, false
	}
	return id, true
}

func (h *PostHandler) parseFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return shared.Filter{}, false
	}
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}.Normalize(), true
}
