package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid invoice status")
	ErrUnknownPreset      = errors.New("unknown discount preset")
	ErrDataStore          = errors.New("data store failure")
)

// ValidationError wraps ErrValidation with the offending field so handlers
// can surface a field-level message.
func ValidationError(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, msg)
}
