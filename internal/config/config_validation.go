// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the invariants shared by every process. Views add their
// own checks in [AgentConfig.validate] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Address == "" || cfg.ShutdownTimeout <= 0 {
		return ErrInvalidAgentConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Rules.Mode {
	case RuleModeGlobal, RuleModePerDomain:
	default:
		return ErrInvalidRulesConfigs
	}
	if cfg.Rules.IDSpace < 1 || cfg.Rules.MaxRules < 1 || cfg.Rules.Priority < 1 {
		return ErrInvalidRulesConfigs
	}

	if cfg.Cache.TTL <= 0 || cfg.Cache.JanitorInterval <= 0 {
		return ErrInvalidCacheConfigs
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.AgentAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
