package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrPersistence         = errors.New("persistence failure")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrConfirmationNeeded  = errors.New("confirmation required")
)
