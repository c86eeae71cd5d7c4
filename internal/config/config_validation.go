// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	// MaxDelay must leave the delay endpoint room to respond before the
	// server's write timeout cuts the connection.
	if cfg.Server.MaxDelay <= 0 || cfg.Server.MaxDelay >= cfg.Server.RequestTimeout {
		return ErrInvalidServerConfigs
	}

	if cfg.Limits.RPS <= 0 || cfg.Limits.Burst <= 0 {
		return ErrInvalidLimitsConfigs
	}

	return nil
}
