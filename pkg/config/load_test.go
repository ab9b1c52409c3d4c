package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	assert := assert.New(t)
	t.Setenv("AUTH_JWT_SECRET", "a-very-secret-key")

	cfg, err := Load("does-not-exist.env")
	require.NoError(t, err)
	assert.Equal("development", cfg.Env)
	assert.Equal(3000, cfg.Server.Port)
	assert.True(cfg.DB.Migrate)
	assert.Equal("a-very-secret-key", cfg.Auth.Jwt.Secret)
	assert.Equal("ledger", cfg.Auth.Jwt.Issuer)
	assert.Equal("ledger-api", cfg.Auth.Jwt.Audience)
	assert.Equal(time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(100, cfg.RateLimit.MaxRequests)
	assert.True(cfg.Seed.Enabled)
	assert.Equal("visualAPI", cfg.Seed.Username)
	assert.Equal("senha123", cfg.Seed.Password)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "a-very-secret-key")
	t.Setenv("AUTH_JWT_EXPIRY", "15m")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("DATABASE_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Seed.Enabled)
	assert.False(t, cfg.DB.Migrate)
}

func TestLoad_RequiresJwtSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))

	_, err := Load("does-not-exist.env")
	assert.Error(t, err)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.ledger-test")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-file-secret\nAUTH_JWT_ISSUER=file-issuer\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_JWT_SECRET", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
	t.Setenv("AUTH_JWT_ISSUER", "")
	require.NoError(t, os.Unsetenv("AUTH_JWT_ISSUER"))

	cfg, err := Load(".env.ledger-test")
	require.NoError(t, err)
	assert.Equal(t, "from-file-secret", cfg.Auth.Jwt.Secret)
	assert.Equal(t, "file-issuer", cfg.Auth.Jwt.Issuer)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "po****able", maskValue("postgres://user:pw@host/db?sslmode=disable"))
}
