package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/register", "", gin.H{
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeEnvelope(t, rec)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Account created successfully", body.Message)

	token := env.login(t, "alice")
	assert.NotEmpty(t, token)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice")

	rec := env.do(t, http.MethodPost, "/users/register", "", gin.H{
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", decodeEnvelope(t, rec).Status)
}

func TestRegisterMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/register", "", gin.H{
		"username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterIgnoresProfilePictureField(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/register", "", gin.H{
		"username":        "alice",
		"password":        "password123",
		"profile_picture": "https://evil.example/avatar.png",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/alice", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://avatars.dicebear.com/4.5/api/human/alice.svg")
	assert.NotContains(t, rec.Body.String(), "evil.example")
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice")

	rec := env.do(t, http.MethodPost, "/users/login", "", gin.H{
		"username": "alice",
		"password": "not-the-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/login", "", gin.H{
		"username": "ghost",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "alice")

	rec := env.do(t, http.MethodPost, "/users/logout", token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The token no longer authenticates
	rec = env.do(t, http.MethodPost, "/snippets", token, gin.H{"content": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutAllRevokesEveryToken(t *testing.T) {
	env := newTestEnv(t)
	first := env.signup(t, "alice")
	second := env.login(t, "alice")

	rec := env.do(t, http.MethodPost, "/users/logout_all", first, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	for _, token := range []string{first, second} {
		rec = env.do(t, http.MethodPost, "/snippets", token, gin.H{"content": "x"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestLogoutRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/users/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPasswordNeverInResponses(t *testing.T) {
	env := newTestEnv(t)
	token := env.signup(t, "alice")
	env.createSnippet(t, token, gin.H{"name": "x", "content": "y"})

	for _, path := range []string{"/snippets", "/users/alice"} {
		rec := env.do(t, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	}
}
