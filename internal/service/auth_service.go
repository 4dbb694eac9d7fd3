package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/snippets-backend/internal/config"
	"github.com/snippets-backend/internal/models"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/pkg/crypto"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token revocation
type AuthService struct {
	userRepo     *repository.UserRepository
	tokenStore   TokenStore
	jwtConfig    config.JWTConfig
	avatarConfig config.AvatarConfig
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repository.UserRepository,
	tokenStore TokenStore,
	jwtConfig config.JWTConfig,
	avatarConfig config.AvatarConfig,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenStore:   tokenStore,
		jwtConfig:    jwtConfig,
		avatarConfig: avatarConfig,
	}
}

// RegisterRequest represents the registration request. Only username
// and password are client-settable; the profile picture is assigned by
// the server.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the bearer token response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// JWTClaims represents the token claims. ID (jti) identifies the token
// in the revocation store.
type JWTClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Register registers a new user. The profile picture is derived from
// the username via the configured avatar URL template.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	passwordHash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		PasswordHash:   passwordHash,
		ProfilePicture: fmt.Sprintf(s.avatarConfig.URLTemplate, req.Username),
	}

	if err := s.userRepo.Create(user); err != nil {
		// Races with a concurrent registration land on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and issues a bearer token
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.generateToken(ctx, user)
}

// Logout revokes the token the request was made with
func (s *AuthService) Logout(ctx context.Context, userID uint, tokenID string) error {
	return s.tokenStore.Revoke(ctx, userID, tokenID)
}

// LogoutAll revokes every token the user holds
func (s *AuthService) LogoutAll(ctx context.Context, userID uint) error {
	return s.tokenStore.RevokeAll(ctx, userID)
}

// ValidateToken validates a token's signature and checks that it has
// not been revoked
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	live, err := s.tokenStore.Exists(ctx, claims.UserID, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// generateToken issues a token and records its id in the revocation
// store for the same lifetime
func (s *AuthService) generateToken(ctx context.Context, user *models.User) (*TokenResponse, error) {
	expiresIn := time.Duration(s.jwtConfig.ExpireHours) * time.Hour
	tokenID := uuid.New().String()

	claims := &JWTClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "snippets-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.Save(ctx, user.ID, tokenID, expiresIn); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresIn:   s.jwtConfig.ExpireHours * 3600,
	}, nil
}
