package webapi_test

import (
	"encoding/json"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/amirasaad/accounts/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestIndex(t *testing.T) {
	t.Parallel()
	app := testutils.NewSQLiteApp(t)

	resp := testutils.Request(t, app, fiber.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Account REST API Service", gjson.GetBytes(body, "name").String())
	assert.Equal(t, "1.0", gjson.GetBytes(body, "version").String())
	assert.True(t, strings.HasSuffix(gjson.GetBytes(body, "paths").String(), "/accounts"))
}

func TestHealth(t *testing.T) {
	t.Parallel()
	app := testutils.NewSQLiteApp(t)

	resp := testutils.Request(t, app, fiber.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
}

func TestNotFoundRoute(t *testing.T) {
	t.Parallel()
	app := testutils.NewSQLiteApp(t)

	resp := testutils.Request(t, app, fiber.MethodGet, "/doesnotexist", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}

func TestMethodNotAllowed(t *testing.T) {
	t.Parallel()
	app := testutils.NewSQLiteApp(t)

	resp := testutils.Request(t, app, fiber.MethodDelete, "/health", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
