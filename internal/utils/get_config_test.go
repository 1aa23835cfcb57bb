package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, "8000", GetConfig("APP_PORT"))
	assert.Equal(t, "/api/v1", GetConfig("API_PREFIX"))
	assert.Equal(t, "riocaja_smart", GetConfig("DB_NAME"))
	assert.Equal(t, "", GetConfig("DATABASE_URL"))
	assert.Equal(t, "", GetConfig("NOT_A_KEY"))
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nDB_NAME: caja\nAPP_PORT: \"9000\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_USER=cajero\n"), 0o600))
	t.Setenv("DB_NAME", "caja_env")
	t.Setenv("DB_HOST", "")
	t.Setenv("APP_PORT", "")
	// godotenv never overrides a variable that is already set
	t.Setenv("DB_USER", "")
	require.NoError(t, os.Unsetenv("DB_USER"))

	LoadConfig(path)

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "caja_env", GetConfig("DB_NAME"))
	assert.Equal(t, "9000", GetConfig("APP_PORT"))
	assert.Equal(t, "cajero", GetConfig("DB_USER"))
	// untouched keys keep their defaults
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
}

func TestGetDurationAndIntConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_TIMEOUT", "250ms")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	LoadConfig("")

	assert.Equal(t, 250*time.Millisecond, GetDurationConfig("DB_TIMEOUT", time.Second))
	assert.Equal(t, 10, GetIntConfig("DB_MAX_OPEN_CONNS", 10))
	assert.Equal(t, 5, GetIntConfig("DB_MAX_IDLE_CONNS", 1))
	assert.Equal(t, time.Minute, GetDurationConfig("LOG_LEVEL", time.Minute))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
