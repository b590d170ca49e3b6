// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Common application errors.
var (
	// Storage errors.
	ErrNotFound = errors.New("not found")

	// Narrative provider errors.
	ErrProviderUnavailable = errors.New("narrative provider unavailable")
	ErrProviderResponse    = errors.New("invalid narrative provider response")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)
