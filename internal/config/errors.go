package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid API connection settings
	// (for example, a malformed base URL or non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid API configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidLogConfigs indicates an unknown log level name.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
