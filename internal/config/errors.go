// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAgentConfigs indicates invalid listener settings
	// (for example, an empty agent address).
	ErrInvalidAgentConfigs = errors.New("invalid agent configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidRulesConfigs indicates invalid rule manager settings
	// (unknown mode, non-positive id space or rule cap).
	ErrInvalidRulesConfigs = errors.New("invalid rules configuration")
	// ErrInvalidCacheConfigs indicates invalid cache settings.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAdapterConfigs indicates invalid outbound HTTP settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
