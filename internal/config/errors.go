package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address or a zero timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimitsConfigs indicates invalid rate limiter settings
	// (for example, a zero or negative request budget).
	ErrInvalidLimitsConfigs = errors.New("invalid limits configuration")
)
