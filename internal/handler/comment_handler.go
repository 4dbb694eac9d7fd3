package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

// CommentHandler handles comment API requests
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// Create handles creating a comment under a snippet. The snippet
// association comes from the path, never the payload.
// POST /snippets/:uid/comments
func (h *CommentHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Create(userID, c.Param("uid"), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		response.InternalError(c, "failed to create comment")
		return
	}

	response.Created(c, "Comment created successfully", comment)
}

// Update handles editing a comment. Author only; a comment id under a
// different snippet than the path names is a 404.
// PUT /snippets/:uid/comments/:id
func (h *CommentHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Update(userID, c.Param("uid"), uint(commentID), &req)
	if err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, repository.ErrCommentNotFound) {
			response.NotFound(c, "comment not found")
			return
		}
		if errors.Is(err, service.ErrNotAuthor) {
			response.Forbidden(c, "only the author can modify this comment")
			return
		}
		response.InternalError(c, "failed to update comment")
		return
	}

	response.Success(c, comment)
}

// Delete handles deleting a comment. Author only.
// DELETE /snippets/:uid/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.commentService.Delete(userID, c.Param("uid"), uint(commentID)); err != nil {
		if errors.Is(err, repository.ErrSnippetNotFound) {
			response.NotFound(c, "snippet not found")
			return
		}
		if errors.Is(err, repository.ErrCommentNotFound) {
			response.NotFound(c, "comment not found")
			return
		}
		if errors.Is(err, service.ErrNotAuthor) {
			response.Forbidden(c, "only the author can modify this comment")
			return
		}
		response.InternalError(c, "failed to delete comment")
		return
	}

	response.NoContent(c, "Comment deleted successfully")
}

// RegisterRoutes registers comment routes
func (h *CommentHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	comments := r.Group("/snippets/:uid/comments", auth)
	{
		comments.POST("", h.Create)
		comments.PUT("/:id", h.Update)
		comments.DELETE("/:id", h.Delete)
	}
}
