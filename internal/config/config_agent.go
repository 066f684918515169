// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// AgentConfig is the configuration view of the background agent.
type AgentConfig struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// Address is the message channel listen address.
	Address string
	// ShutdownTimeout bounds graceful listener shutdown.
	ShutdownTimeout time.Duration
	// RequestTimeout bounds requests to the auth server.
	RequestTimeout time.Duration
	// Storage holds both storage scopes.
	Storage Storage
	// Rules holds rule manager settings.
	Rules Rules
	// Cache holds pseudonym cache settings.
	Cache Cache
	// Workers holds background worker settings.
	Workers Workers
}

// GetAgentConfig builds and validates the agent view of the merged config.
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := cfg.AgentView()
	if err := agentCfg.validate(); err != nil {
		return nil, err
	}

	return agentCfg, nil
}

// AgentView maps the structured config onto an [AgentConfig] without
// validating it.
func (cfg *StructuredConfig) AgentView() *AgentConfig {
	return &AgentConfig{
		LogLevel:        cfg.App.LogLevel,
		Address:         cfg.Agent.Address,
		ShutdownTimeout: cfg.Agent.ShutdownTimeout,
		RequestTimeout:  cfg.Adapter.RequestTimeout,
		Storage:         cfg.Storage,
		Rules:           cfg.Rules,
		Cache:           cfg.Cache,
		Workers:         cfg.Workers,
	}
}
