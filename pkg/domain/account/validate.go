package account

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so errors line up with request payload keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fields mirrors Account for constraint checks.
type fields struct {
	Name        string  `json:"name" validate:"required,max=63"`
	Address     string  `json:"address" validate:"required,max=256"`
	Email       string  `json:"email" validate:"required,max=63"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
}

// Validate checks the column constraints of the accounts table.
func (a *Account) Validate() error {
	err := validate.Struct(fields{
		Name:        a.Name,
		Address:     a.Address,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg := fmt.Sprintf("%s is required", fe.Field())
	if fe.Tag() == "max" {
		msg = fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return &ValidationError{
		Kind:  KindInvalidField,
		Field: fe.Field(),
		Msg:   msg,
	}
}
