package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

// AuthHandler handles registration, login and logout requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// POST /users/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.BadRequest(c, "username already taken")
			return
		}
		response.InternalError(c, "failed to register user")
		return
	}

	response.Created(c, "Account created successfully", nil)
}

// Login handles user login
// POST /users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, "invalid username or password")
			return
		}
		response.InternalError(c, "failed to login")
		return
	}

	response.Success(c, token)
}

// Logout revokes the token the request was authenticated with
// POST /users/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	tokenID := middleware.GetTokenID(c)

	if err := h.authService.Logout(c.Request.Context(), userID, tokenID); err != nil {
		response.InternalError(c, "failed to logout")
		return
	}

	response.NoContent(c, "Logged out successfully")
}

// LogoutAll revokes every token the user holds
// POST /users/logout_all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := h.authService.LogoutAll(c.Request.Context(), userID); err != nil {
		response.InternalError(c, "failed to logout")
		return
	}

	response.NoContent(c, "Logged out of all sessions")
}

// RegisterRoutes registers auth routes
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc) {
	users := r.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/logout", auth, h.Logout)
		users.POST("/logout_all", auth, h.LogoutAll)
	}
}
