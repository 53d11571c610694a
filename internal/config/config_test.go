package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "schoolhub", cfg.Database.DBName)
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "schoolhub.app", cfg.JWT.Issuer)
	assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "admin@schoolhub.app", cfg.Seed.AdminEmail)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: "9000"
jwt:
  secret: "file-secret"
database:
  dbname: "from_file"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_NAME", "from_env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "from_env", cfg.Database.DBName)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadTokenExpiration(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "whenever")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "schoolhub"

	assert.Equal(t,
		"postgres://app:pw@db.internal:5433/schoolhub?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
