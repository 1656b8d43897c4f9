package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PGS-BookingService/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
[server]
http_port = 9090

[database]
user = "booking"
dbname = "booking"

[auth]
jwt_secret = "file-secret"
token_ttl_hours = 12
`

func TestLoad_AppliesFileOverDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 12, cfg.Auth.TokenTTLHours)

	// Значения по умолчанию для незаполненных секций
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.True(t, cfg.Database.Migrate)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "env-password")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	content := `
[database]
user = "booking"
dbname = "booking"
`
	_, err := config.Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_MissingDatabase(t *testing.T) {
	content := `
[auth]
jwt_secret = "s"
`
	_, err := config.Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=booking password= dbname=booking sslmode=disable",
		cfg.Database.DSN())
}
