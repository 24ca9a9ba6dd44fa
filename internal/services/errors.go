package services

import "errors"

// Sentinel errors raised by services and mapped once at the handler
// boundary. Handlers never branch on error strings.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrConflict         = errors.New("resource conflict")
	ErrValidationFailed = errors.New("validation failed")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthorized     = errors.New("unauthorized")
)
