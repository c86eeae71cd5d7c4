// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The utilkit Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix namespaces every utilkit environment variable so the process
// can share an environment with other services.
const envPrefix = "UTILKIT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, all under the global
// UTILKIT_ prefix.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
