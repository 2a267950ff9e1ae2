package initializer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/accounts/infra"
	"github.com/amirasaad/accounts/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(url string) *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 8080},
		Log:    &config.Log{Format: "text", Prefix: "[accounts]", TimeFormat: time.Kitchen},
		DB:     &config.DB{Url: url, MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Hour},
	}
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logger := setupLogger(&config.Log{Format: "json", Prefix: "[accounts]"}, &buf)
	logger.Info("Creating account", "name", "John")

	assert.Contains(t, buf.String(), `"msg":"Creating account"`)
	assert.Contains(t, buf.String(), `"name":"John"`)
	assert.Contains(t, buf.String(), "[accounts]")
	assert.Same(t, logger, slog.Default())
}

func TestInitializeDependencies(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	deps, err := InitializeDependencies(testConfig("sqlite://file::memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(deps.DB) })

	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.AccountRepository)
	assert.True(t, deps.DB.Migrator().HasTable("accounts"))
}

func TestInitializeDependencies_BadURL(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	_, err := InitializeDependencies(testConfig("mysql://nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database url scheme")
}
