// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from environ (KEY=value pairs, as returned by
// os.Environ) following the `env` and `envPrefix` tags of [StructuredConfig].
// Only variables present in environ are applied, so unset keys stay zero and
// do not override lower layers on merge.
func parseEnv(cfg *StructuredConfig, environ []string) error {
	opts := env.Options{Environment: env.ToMap(environ)}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
