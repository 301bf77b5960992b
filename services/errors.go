package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; anything else is treated as an internal error.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)
