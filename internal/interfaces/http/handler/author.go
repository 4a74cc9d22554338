package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogapp "github.com/blog/backend/internal/application/blog"
	"github.com/blog/backend/internal/domain/shared"
	"github.com/blog/backend/internal/interfaces/http/dto"
)

// AuthorHandler handles author API endpoints
type AuthorHandler struct {
	BaseHandler
	authorService *blogapp.AuthorService
}

// NewAuthorHandler creates a new AuthorHandler
func NewAuthorHandler(authorService *blogapp.AuthorService) *AuthorHandler {
	return &AuthorHandler{authorService: authorService}
}

// Create handles POST /blog/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req blogapp.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	author, err := h.authorService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, author)
}

// Get handles GET /blog/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	author, err := h.authorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, author)
}

// List handles GET /blog/authors
func (h *AuthorHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}.Normalize()

	authors, total, err := h.authorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, authors, total, filter.Page, filter.PageSize)
}

// Update handles PUT /blog/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req blogapp.RenameAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	author, err := h.authorService.Rename(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, author)
}

// Delete handles DELETE /blog/authors/:id.
// All posts written by the author are removed along with the author.
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.authorService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AuthorHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid author ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid author ID")
		return uuid.Nil, false
	}
	return id, true
}
