package service

import "errors"

// The three error kinds the handlers map to status codes. Operations wrap
// them with a human-readable reason via fmt.Errorf("...: %w", Err...).
var (
	ErrValidation = errors.New("validation")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
)
