package account

import (
	"fmt"

	"github.com/amirasaad/accounts/pkg/domain"
)

// ErrMissingID is returned when an update is attempted on a transient account.
var ErrMissingID = fmt.Errorf("%w: update called with empty ID field", domain.ErrValidation)

// ErrorKind enumerates the ways an account payload can be rejected.
type ErrorKind int

const (
	// KindNotAMapping means the payload was not a JSON object.
	KindNotAMapping ErrorKind = iota + 1
	// KindMissingField means a required key was absent.
	KindMissingField
	// KindWrongType means a key was present with a non-string value.
	KindWrongType
	// KindInvalidField means a value broke a column constraint (empty or too long).
	KindInvalidField
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotAMapping:
		return "not_a_mapping"
	case KindMissingField:
		return "missing_field"
	case KindWrongType:
		return "wrong_type"
	case KindInvalidField:
		return "invalid_field"
	default:
		return "unknown"
	}
}

// ValidationError describes why a payload could not be turned into an Account.
// It matches domain.ErrValidation with errors.Is.
type ValidationError struct {
	Kind  ErrorKind
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return "invalid account: " + e.Msg
}

// Unwrap lets callers test for domain.ErrValidation.
func (e *ValidationError) Unwrap() error {
	return domain.ErrValidation
}

func notAMapping(data any) *ValidationError {
	return &ValidationError{
		Kind: KindNotAMapping,
		Msg:  fmt.Sprintf("body of request contained bad or no data (%T)", data),
	}
}

func missingField(field string) *ValidationError {
	return &ValidationError{
		Kind:  KindMissingField,
		Field: field,
		Msg:   "missing " + field,
	}
}

func wrongType(field string, value any) *ValidationError {
	return &ValidationError{
		Kind:  KindWrongType,
		Field: field,
		Msg:   fmt.Sprintf("%s must be a string, got %T", field, value),
	}
}
