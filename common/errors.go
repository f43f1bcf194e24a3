// Package common provides shared constants, types, and utilities
// used across the Styling application.
package common

import "errors"

// Sentinel errors.
// These can be checked with errors.Is() for proper error handling.
var (
	// Startup errors.
	ErrToolkitInit    = errors.New("toolkit initialization failed")
	ErrEmptyCatalogue = errors.New("theme catalogue is empty")

	// Theme errors.
	ErrUnknownTheme = errors.New("theme not found")
	ErrInvalidColor = errors.New("invalid color")

	// Configuration errors.
	ErrConfigLoad    = errors.New("failed to load configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
