package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

// SnippetHandler handles snippet API requests
type SnippetHandler struct {
	snippetService *service.SnippetService
}

// NewSnippetHandler creates a new SnippetHandler
func NewSnippetHandler(snippetService *service.SnippetService) *SnippetHandler {
	return &SnippetHandler{
		snippetService: snippetService,
	}
}

// List handles listing all non-secret snippets, newest first
// GET /snippets
func (h *SnippetHandler) List(c *gin.Context) {
	viewerID := middleware.GetUserID(c)

	snippets, err := h.snippetService.List(viewerID)
	if err != nil {
		response.InternalError(c, "failed to list snippets")
		return
	}

	response.Success(c, snippets)
}

// Create handles snippet creation
// POST /snippets
func (h *SnippetHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CreateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	snippet, err := h.snippetService.Create(userID, &req)
	if err != nil {
		response.InternalError(c, "failed to create snippet")
		return
	}

	response.Created(c, "Snippet created successfully", snippet)
}

// Get handles retrieving a single snippet by uid. Secret snippets are
// retrievable by anyone holding the uid; secrecy only hides them from
// listings.
// GET /snippets/:uid
func (h *SnippetHandler) Get(c *gin.Context) {
	viewerID := middleware.GetUserID(c)

	snippet, err := h.snippetService.Get(c.Param("uid"), viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		response.InternalError(c, "failed to retrieve snippet")
		return
	}

	response.Success(c, snippet)
}

// Update handles updating a snippet. Owner only; absent fields are left
// unchanged so PUT and PATCH behave the same.
// PUT/PATCH /snippets/:uid
func (h *SnippetHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.UpdateSnippetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	snippet, err := h.snippetService.Update(userID, c.Param("uid"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			response.Forbidden(c, "only the owner can modify this snippet")
			return
		}
		response.InternalError(c, "failed to update snippet")
		return
	}

	response.Success(c, snippet)
}

// Delete handles deleting a snippet. Owner only.
// DELETE /snippets/:uid
func (h *SnippetHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.snippetService.Delete(userID, c.Param("uid")); err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, service.ErrNotOwner) {
			response.Forbidden(c, "only the owner can modify this snippet")
			return
		}
		response.InternalError(c, "failed to delete snippet")
		return
	}

	response.NoContent(c, "Snippet deleted successfully")
}

// RegisterRoutes registers snippet routes. Read endpoints use the
// optional middleware so anonymous viewers get viewer-aware responses.
func (h *SnippetHandler) RegisterRoutes(r *gin.Engine, auth, optionalAuth gin.HandlerFunc) {
	snippets := r.Group("/snippets")
	{
		snippets.GET("", optionalAuth, h.List)
		snippets.POST("", auth, h.Create)
		snippets.GET("/:uid", optionalAuth, h.Get)
		snippets.PUT("/:uid", auth, h.Update)
		snippets.PATCH("/:uid", auth, h.Update)
		snippets.DELETE("/:uid", auth, h.Delete)
	}
}
