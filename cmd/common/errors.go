package common

import "errors"

// Common dependency errors.
var (
	// ErrLoggerRequired is returned when a logger is missing.
	ErrLoggerRequired = errors.New("logger is required")

	// ErrConfigRequired is returned when a config is missing.
	ErrConfigRequired = errors.New("config is required")
)
