// Package common defines shared constants and sentinel errors used across
// client and server layers of testdash. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorInternal           = errors.New("internal error")
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorValidation         = errors.New("validation error")

	// Auth errors.
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrEmptySecret   = errors.New("signing secret must not be empty")
	ErrEmptyPassword = errors.New("password must not be empty")
)

// NewValidationError wraps err so that errors.Is(result, ErrorValidation)
// holds and the field details stay in the message.
func NewValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrorValidation, err)
}
