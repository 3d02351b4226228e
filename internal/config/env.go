// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping is declared on
// [StructuredConfig] itself through `env` and `envPrefix` struct tags, with
// nested prefixes composing (STORAGE_ + REDIS_ + ADDRESS).
//
// Fails when a variable is present but cannot be converted to its field's
// type, e.g. a malformed duration in APP_SESSION_TTL.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parsing environment variables: %w", err)
	}

	return nil
}
