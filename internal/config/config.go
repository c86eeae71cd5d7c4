// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the utilkit
// server and CLI. It aggregates all sub-configurations and is populated by
// merging values from command-line overrides, environment variables, an
// optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global "UTILKIT_" prefix,
// so Server.Address reads UTILKIT_SERVER_ADDRESS.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version and
	// the log level.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout, and request-cap settings for
	// the HTTP API server.
	Server Server `envPrefix:"SERVER_"`

	// Metrics holds the optional dedicated listener for Prometheus metrics.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Limits holds the global rate-limiting settings applied to the API.
	Limits Limits `envPrefix:"LIMITS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Populated via the UTILKIT_CONFIG environment variable or the
	// --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint. When empty,
	// the binary falls back to its build-time version.
	// Env: UTILKIT_APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level emitted ("debug", "info",
	// "warn", "error").
	// Env: UTILKIT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// Address is the TCP address on which the API server listens, in
	// "host:port" format (e.g. "0.0.0.0:8080").
	// Env: UTILKIT_SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: UTILKIT_SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout is how long a graceful shutdown may take before the
	// server gives up on in-flight requests.
	// Env: UTILKIT_SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxDelay caps the duration a single /api/delay request may sleep.
	// Requests above the cap are rejected, not truncated.
	// Env: UTILKIT_SERVER_MAX_DELAY
	MaxDelay time.Duration `env:"MAX_DELAY"`
}

// Metrics holds the optional dedicated metrics listener. With an empty
// Address, /metrics is served from the API listener instead.
type Metrics struct {
	// Address is the TCP address of the standalone metrics server
	// (e.g. "0.0.0.0:9090"); empty disables the second listener.
	// Env: UTILKIT_METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Limits holds the global token-bucket rate limit for the API.
type Limits struct {
	// RPS is the sustained number of requests per second admitted across
	// all clients.
	// Env: UTILKIT_LIMITS_RPS
	RPS float64 `env:"RPS"`

	// Burst is the number of requests that may be admitted at once beyond
	// the sustained rate.
	// Env: UTILKIT_LIMITS_BURST
	Burst int `env:"BURST"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. Sources are merged first-wins, so the priority order is:
//  1. Command-line overrides (non-zero fields of overrides; may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}

// defaultConfig is the lowest-priority source: every field a deployment is
// allowed to omit has its fallback here.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: "info",
		},
		Server: Server{
			Address:         ":8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxDelay:        10 * time.Second,
		},
		Limits: Limits{
			RPS:   50,
			Burst: 100,
		},
	}
}
