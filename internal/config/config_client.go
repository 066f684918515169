// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view of the interactive client.
type ClientConfig struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogPath is the client log file.
	LogPath string
	// AgentAddress is the agent message channel address.
	AgentAddress string
	// RequestTimeout bounds every request to the agent.
	RequestTimeout time.Duration
	// Args holds the client subcommand and its arguments.
	Args []string
}

// GetClientConfig builds and validates the client view of the merged config.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientView()
	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

// ClientView maps the structured config onto a [ClientConfig] without
// validating it.
func (cfg *StructuredConfig) ClientView() *ClientConfig {
	return &ClientConfig{
		LogLevel:       cfg.App.LogLevel,
		LogPath:        cfg.App.LogPath,
		AgentAddress:   cfg.Adapter.AgentAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Args:           cfg.args,
	}
}
