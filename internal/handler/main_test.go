package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snippets-backend/internal/config"
	"github.com/snippets-backend/internal/handler"
	"github.com/snippets-backend/internal/middleware"
	"github.com/snippets-backend/internal/models"
	"github.com/snippets-backend/internal/repository"
	"github.com/snippets-backend/internal/service"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memTokenStore is an in-memory TokenStore for tests
type memTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: make(map[string]bool)}
}

func (s *memTokenStore) key(userID uint, tokenID string) string {
	return fmt.Sprintf("%d:%s", userID, tokenID)
}

func (s *memTokenStore) Save(_ context.Context, userID uint, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[s.key(userID, tokenID)] = true
	return nil
}

func (s *memTokenStore) Exists(_ context.Context, userID uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[s.key(userID, tokenID)], nil
}

func (s *memTokenStore) Revoke(_ context.Context, userID uint, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, s.key(userID, tokenID))
	return nil
}

func (s *memTokenStore) RevokeAll(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := fmt.Sprintf("%d:", userID)
	for k := range s.tokens {
		if strings.HasPrefix(k, prefix) {
			delete(s.tokens, k)
		}
	}
	return nil
}

// testEnv wires the full router against an in-memory database
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Snippet{},
		&models.Comment{},
		&models.Star{},
	))

	userRepo := repository.NewUserRepository(db)
	snippetRepo := repository.NewSnippetRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	starRepo := repository.NewStarRepository(db)

	jwtConfig := config.JWTConfig{Secret: "test-secret", ExpireHours: 1}
	avatarConfig := config.AvatarConfig{URLTemplate: config.DefaultAvatarURLTemplate}

	authService := service.NewAuthService(userRepo, newMemTokenStore(), jwtConfig, avatarConfig)
	snippetService := service.NewSnippetService(snippetRepo, starRepo)
	commentService := service.NewCommentService(commentRepo, snippetRepo)
	profileService := service.NewProfileService(userRepo, snippetRepo, starRepo, snippetService)

	router := gin.New()
	authMiddleware := middleware.AuthMiddleware(authService)
	optionalAuthMiddleware := middleware.OptionalAuthMiddleware(authService)

	handler.NewAuthHandler(authService).RegisterRoutes(router, authMiddleware)
	handler.NewSnippetHandler(snippetService).RegisterRoutes(router, authMiddleware, optionalAuthMiddleware)
	handler.NewStarHandler(snippetService).RegisterRoutes(router, authMiddleware)
	handler.NewCommentHandler(commentService).RegisterRoutes(router, authMiddleware)
	handler.NewUserHandler(profileService).RegisterRoutes(router, optionalAuthMiddleware)

	return &testEnv{router: router, db: db}
}

// do performs a request against the test router
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the API response wrapper
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// userView mirrors the public user representation
type userView struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

// commentView mirrors the comment representation
type commentView struct {
	ID      uint     `json:"id"`
	User    userView `json:"user"`
	Message string   `json:"message"`
}

// snippetView mirrors the snippet representation
type snippetView struct {
	User            userView      `json:"user"`
	UID             string        `json:"uid"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Content         string        `json:"content"`
	Secret          bool          `json:"secret"`
	StargazersCount int64         `json:"stargazers_count"`
	IsStarred       bool          `json:"is_starred"`
	Comments        []commentView `json:"comments"`
}

// profileView mirrors the profile representation
type profileView struct {
	ID              uint          `json:"id"`
	Username        string        `json:"username"`
	ProfilePicture  string        `json:"profile_picture"`
	StargazersCount int64         `json:"stargazers_count"`
	Snippets        []snippetView `json:"snippets"`
}

// signup registers a user and returns a login token
func (e *testEnv) signup(t *testing.T, username string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/users/register", "", gin.H{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	return e.login(t, username)
}

// login obtains a token for an existing user
func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/users/login", "", gin.H{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

// createSnippet creates a snippet and returns its view
func (e *testEnv) createSnippet(t *testing.T, token string, body gin.H) snippetView {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/snippets", token, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view snippetView
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	return view
}

// getSnippet retrieves a snippet view by uid
func (e *testEnv) getSnippet(t *testing.T, token, uid string) snippetView {
	t.Helper()

	rec := e.do(t, http.MethodGet, "/snippets/"+uid, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view snippetView
	env := decodeEnvelope(t, rec)
	require.NoError(t, json.Unmarshal(env.Data, &view))
	return view
}
