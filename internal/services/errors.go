// internal/services/errors.go
package services

import "errors"

// Error kinds the handler layer maps onto HTTP statuses.
var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidInput     = errors.New("invalid input")

	ErrUnknownUser   = errors.New("unknown username")
	ErrWrongPassword = errors.New("wrong password")
	ErrMissingToken  = errors.New("missing authorization token")
	ErrInvalidToken  = errors.New("invalid authorization token")
)
