// Package common holds the response helpers shared by the HTTP handlers.
package common

import (
	"errors"

	"github.com/amirasaad/accounts/pkg/domain"
	"github.com/amirasaad/accounts/pkg/domain/account"
	"github.com/gofiber/fiber/v2"
)

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
	Errors   any    `json:"errors,omitempty"`   // Optional: additional error details
}

// FieldError is the extension member attached to validation problems.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Kind  string `json:"kind"`
}

// ProblemDetailsJSON writes err as application/problem+json. The status is
// derived from err unless an int is passed in args; a string in args
// replaces the detail.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, args ...any) error {
	status := ErrorToStatusCode(err)
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}

	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	var verr *account.ValidationError
	if errors.As(err, &verr) {
		pd.Errors = []FieldError{{Field: verr.Field, Kind: verr.Kind.String()}}
	}

	// c.JSON overwrites the content type, so set it afterwards.
	if jsonErr := c.Status(status).JSON(pd); jsonErr != nil {
		return jsonErr
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return nil
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.As(err, &fe):
		return fe.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// RequireJSON rejects requests whose Content-Type is not application/json.
func RequireJSON(c *fiber.Ctx) error {
	if !c.Is("json") {
		return ProblemDetailsJSON(
			c,
			"Unsupported Media Type",
			fiber.ErrUnsupportedMediaType,
			"Content-Type must be application/json",
		)
	}
	return c.Next()
}

// ParseBody decodes the JSON body into a generic value so the caller can
// tell a non-object payload apart from a missing field.
func ParseBody(c *fiber.Ctx) (any, error) {
	var data any
	if err := c.BodyParser(&data); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "malformed JSON body: "+err.Error())
	}
	return data, nil
}
