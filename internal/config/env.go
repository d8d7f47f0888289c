// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment following the `env` and
// `envPrefix` tags of [StructuredConfig]. Unset variables leave fields at
// their zero value so later sources and defaults can fill them.
//
// A malformed value (e.g. SERVER_REQUEST_TIMEOUT=soon) yields an error
// wrapping [ErrInvalidEnvConfigs].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("%w: error getting env configs: %w", ErrInvalidEnvConfigs, err)
	}
	return nil
}
