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
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "postgres://u:secret@db:5432/accounts")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "[accounts]", cfg.Log.Prefix)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "SERVER_PORT=9090\nLOG_FORMAT=json\nDATABASE_URL=sqlite://file::memory:\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(content), 0o600))
	t.Chdir(dir)
	// godotenv does not override existing variables; register for cleanup.
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("SERVER_PORT"))
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "sqlite://file::memory:", cfg.DB.Url)
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestApp_Validate(t *testing.T) {
	cfg := &App{
		Server: &Server{Port: 0},
		Log:    &Log{Format: "text"},
		DB:     &DB{},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "SERVER_PORT")

	cfg.Server.Port = 8080
	cfg.DB.Url = "postgres://localhost/accounts"
	assert.NoError(t, cfg.Validate())
}

func TestMaskURL(t *testing.T) {
	masked := maskURL("postgres://u:secret@db:5432/accounts")
	assert.NotContains(t, masked, "secret")
	assert.Contains(t, masked, "@db:5432/accounts")
	assert.Equal(t, "sqlite://file::memory:", maskURL("sqlite://file::memory:"))
}
