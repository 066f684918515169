// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Rule manager modes.
const (
	// RuleModeGlobal installs a single catch-all rule with the synced URL.
	RuleModeGlobal = "global"
	// RuleModePerDomain installs one rule per observed hostname.
	RuleModePerDomain = "per-domain"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Agent holds the message channel listener settings.
	Agent Agent `envPrefix:"AGENT_"`

	// Storage holds the durable key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Rules holds the dynamic header-rule manager settings.
	Rules Rules `envPrefix:"RULES_"`

	// Cache holds the pseudonym cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds outbound HTTP settings (auth server, agent address).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// args holds the positional command-line arguments left after flag
	// parsing (client subcommands).
	args []string
}

// App holds process-wide settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogPath is the client log file; the client TUI owns stdout.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Agent holds the message channel listener settings.
type Agent struct {
	// Address is the host:port the agent message channel listens on.
	// Env: AGENT_ADDRESS
	Address string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of the listener.
	// Env: AGENT_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the durable storage backends.
type Storage struct {
	// DB holds the sqlite database backing both storage scopes.
	DB DB `envPrefix:"DB_"`

	// Sync holds the optional redis backend for the synced scope.
	Sync Sync `envPrefix:"SYNC_"`
}

// DB holds sqlite connection settings.
type DB struct {
	// DSN is the sqlite file path or DSN.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds redis settings for the synced scope. An empty RedisAddr keeps
// the synced scope in sqlite.
type Sync struct {
	// Env: STORAGE_SYNC_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
	// Env: STORAGE_SYNC_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_SYNC_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// KeyPrefix namespaces the synced keys in redis.
	// Env: STORAGE_SYNC_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Rules holds the dynamic header-rule manager settings.
type Rules struct {
	// Mode is [RuleModeGlobal] or [RuleModePerDomain].
	// Env: RULES_MODE
	Mode string `env:"MODE"`

	// IDSpace bounds hash-derived rule ids to [1, IDSpace].
	// Env: RULES_ID_SPACE
	IDSpace int `env:"ID_SPACE"`

	// MaxRules caps the number of active dynamic rules in the engine.
	// Env: RULES_MAX_RULES
	MaxRules int `env:"MAX_RULES"`

	// Priority is the priority of installed rules.
	// Env: RULES_PRIORITY
	Priority int `env:"PRIORITY"`
}

// Cache holds pseudonym cache settings.
type Cache struct {
	// TTL is the freshness window of a cached pseudonym.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// JanitorInterval is how often expired entries are evicted.
	// Env: CACHE_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// Adapter holds outbound HTTP settings.
type Adapter struct {
	// AgentAddress is the agent message channel address used by the client.
	// Env: ADAPTER_AGENT_ADDRESS
	AgentAddress string `env:"AGENT_ADDRESS"`

	// RequestTimeout bounds every outbound request (auth server, agent).
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// RotateAtDayBoundary re-derives every observed domain at the UTC day
	// boundary instead of waiting for cache expiry.
	// Env: WORKERS_ROTATE_AT_DAY_BOUNDARY
	RotateAtDayBoundary bool `env:"ROTATE_AT_DAY_BOUNDARY"`
}

// Args returns the positional arguments left after flag parsing.
func (cfg *StructuredConfig) Args() []string {
	return cfg.args
}

// defaults returns the built-in baseline configuration.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: "info"},
		Agent: Agent{
			Address:         "127.0.0.1:7787",
			ShutdownTimeout: 5 * time.Second,
		},
		Storage: Storage{
			DB:   DB{DSN: "openpims.db"},
			Sync: Sync{KeyPrefix: "openpims:sync:"},
		},
		Rules: Rules{
			Mode:     RuleModePerDomain,
			IDSpace:  10000,
			MaxRules: 5000,
			Priority: 1,
		},
		Cache: Cache{
			TTL:             24 * time.Hour,
			JanitorInterval: time.Hour,
		},
		Adapter: Adapter{
			AgentAddress:   "127.0.0.1:7787",
			RequestTimeout: 15 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. os.Args[1:] is parsed with the process-wide flag set.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(nil).
		withJSON().
		build()
}
