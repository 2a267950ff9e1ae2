package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, fiber.StatusBadRequest},
		{"validation", domain.ErrValidation, fiber.StatusBadRequest},
		{"missing id", account.ErrMissingID, fiber.StatusBadRequest},
		{"typed validation", &account.ValidationError{Kind: account.KindMissingField}, fiber.StatusBadRequest},
		{"not found", fmt.Errorf("account 1: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{"conflict", domain.ErrAlreadyExists, fiber.StatusConflict},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ErrorToStatusCode(tc.err))
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Get("/invalid", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Invalid account", &account.ValidationError{
			Kind:  account.KindMissingField,
			Field: "name",
			Msg:   "missing name",
		})
	})
	app.Get("/override", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Teapot", errors.New("boom"), "custom detail", fiber.StatusTeapot)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/invalid", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd ProblemDetails
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &pd))
	assert.Equal(t, "Invalid account", pd.Title)
	assert.Equal(t, "/invalid", pd.Instance)
	assert.Contains(t, pd.Detail, "missing name")
	assert.Contains(t, string(body), `"field":"name"`)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/override", nil))
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "custom detail")
}

func TestRequireJSON(t *testing.T) {
	t.Parallel()
	app := fiber.New()
	app.Post("/", RequireJSON, func(c *fiber.Ctx) error {
		data, err := ParseBody(c)
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid request body", err)
		}
		return c.JSON(data)
	})

	tests := []struct {
		name        string
		contentType string
		body        string
		want        int
	}{
		{"json", "application/json", `{"a":1}`, fiber.StatusOK},
		{"json with charset", "application/json; charset=utf-8", `{"a":1}`, fiber.StatusOK},
		{"missing", "", `{"a":1}`, fiber.StatusUnsupportedMediaType},
		{"html", "text/html", `{"a":1}`, fiber.StatusUnsupportedMediaType},
		{"malformed", "application/json", `{"a":`, fiber.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(fiber.MethodPost, "/", strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set(fiber.HeaderContentType, tc.contentType)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
