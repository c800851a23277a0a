// Package apperrors defines the error kinds the data-access core surfaces
// to its callers. The HTTP layer maps these onto status codes; nothing in
// the core swallows them.
package apperrors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotInitialized is returned when the store is used before setup.
	ErrNotInitialized = errors.New("store is not initialized")

	// ErrNotFound is returned when a referenced record does not exist,
	// e.g. a food log pointing at an unknown food item.
	ErrNotFound = errors.New("record not found")

	// ErrConstraintViolation is returned on a uniqueness breach that upsert
	// semantics do not resolve, e.g. inserting a duplicate food item name
	// outside the idempotent seed path.
	ErrConstraintViolation = errors.New("uniqueness constraint violated")
)

// ValidationError reports a missing or invalid required field on a write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// FromGorm translates gorm's sentinel errors into core error kinds. Other
// errors pass through unchanged.
func FromGorm(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConstraintViolation
	default:
		return err
	}
}
