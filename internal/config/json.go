// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogPath  string `json:"log_path"`
	} `json:"app,omitempty"`

	Agent struct {
		Address         string   `json:"address"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"agent,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Sync struct {
			RedisAddr     string `json:"redis_addr"`
			RedisPassword string `json:"redis_password"`
			RedisDB       int    `json:"redis_db"`
			KeyPrefix     string `json:"key_prefix"`
		} `json:"sync,omitempty"`
	} `json:"storage,omitempty"`

	Rules struct {
		Mode     string `json:"mode"`
		IDSpace  int    `json:"id_space"`
		MaxRules int    `json:"max_rules"`
		Priority int    `json:"priority"`
	} `json:"rules,omitempty"`

	Cache struct {
		TTL             Duration `json:"ttl"`
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"cache,omitempty"`

	Adapter struct {
		AgentAddress   string   `json:"agent_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RotateAtDayBoundary bool `json:"rotate_at_day_boundary"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogPath:  jsonCfg.App.LogPath,
		},
		Agent: Agent{
			Address:         jsonCfg.Agent.Address,
			ShutdownTimeout: time.Duration(jsonCfg.Agent.ShutdownTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
			Sync: Sync{
				RedisAddr:     jsonCfg.Storage.Sync.RedisAddr,
				RedisPassword: jsonCfg.Storage.Sync.RedisPassword,
				RedisDB:       jsonCfg.Storage.Sync.RedisDB,
				KeyPrefix:     jsonCfg.Storage.Sync.KeyPrefix,
			},
		},
		Rules: Rules{
			Mode:     jsonCfg.Rules.Mode,
			IDSpace:  jsonCfg.Rules.IDSpace,
			MaxRules: jsonCfg.Rules.MaxRules,
			Priority: jsonCfg.Rules.Priority,
		},
		Cache: Cache{
			TTL:             time.Duration(jsonCfg.Cache.TTL),
			JanitorInterval: time.Duration(jsonCfg.Cache.JanitorInterval),
		},
		Adapter: Adapter{
			AgentAddress:   jsonCfg.Adapter.AgentAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{RotateAtDayBoundary: jsonCfg.Workers.RotateAtDayBoundary},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
