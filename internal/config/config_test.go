package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  host: 127.0.0.1
  port: 9090
  mode: release

database:
  host: db.internal
  port: 5432
  user: app
  password: secret
  dbname: snippets
  sslmode: disable

redis:
  host: cache.internal
  port: 6379
  db: 1

jwt:
  secret: file-secret
  expire_hours: 48
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 48, cfg.JWT.ExpireHours)

	// Avatar template falls back to the default when not configured
	assert.Equal(t, DefaultAvatarURLTemplate, cfg.Avatar.URLTemplate)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("AVATAR_URL_TEMPLATE", "https://avatars.example/%s.png")

	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "https://avatars.example/%s.png", cfg.Avatar.URLTemplate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDatabaseDSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, testYAML))
	require.NoError(t, err)

	assert.Equal(t,
		"host=db.internal port=5432 user=app password=secret dbname=snippets sslmode=disable",
		cfg.Database.DSN())
}
