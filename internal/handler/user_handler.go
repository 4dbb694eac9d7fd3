package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

// UserHandler handles user profile requests
type UserHandler struct {
	profileService *service.ProfileService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(profileService *service.ProfileService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
	}
}

// Profile handles retrieving a user profile with their snippet list.
// Owners viewing their own profile see secret snippets as well.
// GET /users/:username
func (h *UserHandler) Profile(c *gin.Context) {
	viewerID := middleware.GetUserID(c)

	profile, err := h.profileService.Profile(c.Param("username"), viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, "failed to retrieve profile")
		return
	}

	response.Success(c, profile)
}

// RegisterRoutes registers user profile routes
func (h *UserHandler) RegisterRoutes(r *gin.Engine, optionalAuth gin.HandlerFunc) {
	r.GET("/users/:username", optionalAuth, h.Profile)
}
