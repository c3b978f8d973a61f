// Package common defines shared constants and sentinel errors used across
// the voicelab service layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Auth errors. ErrInvalidToken covers malformed tokens and tokens whose
	// signature does not verify. The HTTP layer responds identically for
	// ErrInvalidToken and ErrTokenExpired so a caller cannot probe which
	// check failed.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
