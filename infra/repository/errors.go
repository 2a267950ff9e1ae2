package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/accounts/pkg/domain"
	"gorm.io/gorm"
)

// gormToDomain lists the GORM sentinels the store translates. Dialect errors
// only surface as these when the connection is opened with TranslateError.
var gormToDomain = []struct {
	from error
	to   error
}{
	{gorm.ErrRecordNotFound, domain.ErrNotFound},
	{gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
	{gorm.ErrCheckConstraintViolated, domain.ErrValidation},
	{gorm.ErrInvalidData, domain.ErrValidation},
}

// MapGormErrorToDomain converts GORM errors to domain errors. Errors without a
// mapping are returned unchanged.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range gormToDomain {
		if errors.Is(err, m.from) {
			return m.to
		}
	}
	return err
}

// WrapError runs a GORM operation and maps its error. The operation name is
// prefixed to unmapped errors.
//
//	err := WrapError("delete account", func() error {
//	    return r.db.WithContext(ctx).Delete(&Account{}, id).Error
//	})
func WrapError(op string, fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	mapped := MapGormErrorToDomain(err)
	if mapped != err {
		return mapped
	}
	return fmt.Errorf("%s: %w", op, err)
}
