package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/service"
	"github.com/snippets-backend/pkg/response"
)

const (
	// ContextKeyUserID is the key for user ID in gin context
	ContextKeyUserID = "user_id"
	// ContextKeyUsername is the key for username in gin context
	ContextKeyUsername = "username"
	// ContextKeyTokenID is the key for the token id (jti) in gin context
	ContextKeyTokenID = "token_id"
)

// AuthMiddleware creates a bearer-token authentication middleware.
// Requests without a valid, unrevoked token are rejected.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, authService)
		if !ok {
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the viewer's identity when a valid
// token is present but lets anonymous requests through. Used by public
// endpoints whose responses are viewer-aware (is_starred, secret
// snippets on one's own profile).
func OptionalAuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				if claims, err := authService.ValidateToken(c.Request.Context(), parts[1]); err == nil {
					setIdentity(c, claims)
				}
			}
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, authService *service.AuthService) (*service.JWTClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c, "missing authorization header")
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		response.Unauthorized(c, "invalid authorization header format")
		return nil, false
	}

	claims, err := authService.ValidateToken(c.Request.Context(), parts[1])
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims *service.JWTClaims) {
	c.Set(ContextKeyUserID, claims.UserID)
	c.Set(ContextKeyUsername, claims.Username)
	c.Set(ContextKeyTokenID, claims.ID)
}

// GetUserID gets the user ID from the gin context. Zero means the
// request is anonymous.
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0
	}
	return userID.(uint)
}

// GetUsername gets the username from the gin context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get(ContextKeyUsername)
	if !exists {
		return ""
	}
	return username.(string)
}

// GetTokenID gets the token id from the gin context
func GetTokenID(c *gin.Context) string {
	tokenID, exists := c.Get(ContextKeyTokenID)
	if !exists {
		return ""
	}
	return tokenID.(string)
}
