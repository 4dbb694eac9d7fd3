package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

// StarHandler handles star/unstar requests
type StarHandler struct {
	snippetService *service.SnippetService
}

// NewStarHandler creates a new StarHandler
func NewStarHandler(snippetService *service.SnippetService) *StarHandler {
	return &StarHandler{
		snippetService: snippetService,
	}
}

// Star handles starring a snippet
// POST /stargazers/:uid
func (h *StarHandler) Star(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.snippetService.Star(userID, c.Param("uid")); err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, repository.ErrAlreadyStarred) {
			response.BadRequest(c, "Snippet already starred")
			return
		}
		response.InternalError(c, "failed to star snippet")
		return
	}

	response.SuccessMessage(c, "Snippet starred successfully")
}

// Unstar handles removing a star from a snippet
// DELETE /stargazers/:uid
func (h *StarHandler) Unstar(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.snippetService.Unstar(userID, c.Param("uid")); err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, repository.ErrNotStarred) {
			response.BadRequest(c, "Snippet not starred")
			return
		}
		response.InternalError(c, "failed to unstar snippet")
		return
	}

	response.NoContent(c, "Snippet unstarred successfully")
}

// RegisterRoutes registers star routes
func (h *StarHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	stargazers := r.Group("/stargazers", auth)
	{
		stargazers.POST("/:uid", h.Star)
		stargazers.DELETE("/:uid", h.Unstar)
	}
}
