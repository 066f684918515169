// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers all configuration flags on fs, parses args and
// returns the resulting config together with the remaining positional
// arguments.
//
// Flags:
//
//	-a agent listen address in format [host]:[port]
//	-agent agent address used by the client in format [host]:[port]
//	-d sqlite database DSN
//	-redis redis address of the synced storage scope
//	-mode rule manager mode (global | per-domain)
//	-id-space upper bound of hashed rule ids
//	-max-rules maximum number of active dynamic rules
//	-cache-ttl pseudonym cache TTL (e.g. "24h")
//	-request-timeout outbound request timeout (e.g. "15s")
//	-rotate re-derive rules at the UTC day boundary
//	-log-level zerolog level
//	-c/-config json file path with configs
func ParseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, []string, error) {
	var agentAddress, clientAgentAddress NetAddress
	var databaseDSN, redisAddr, mode, logLevel, logPath, jsonConfigPath string
	var idSpace, maxRules int
	var cacheTTL, requestTimeout time.Duration
	var rotate bool

	fs.Var(&agentAddress, "a", "Agent listen address host:port")
	fs.Var(&clientAgentAddress, "agent", "Agent address used by the client host:port")
	fs.StringVar(&databaseDSN, "d", "", "Sqlite database DSN")
	fs.StringVar(&redisAddr, "redis", "", "Redis address for the synced scope")
	fs.StringVar(&mode, "mode", "", "Rule mode: global or per-domain")
	fs.IntVar(&idSpace, "id-space", 0, "Upper bound of hashed rule ids")
	fs.IntVar(&maxRules, "max-rules", 0, "Maximum number of active dynamic rules")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Pseudonym cache TTL (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	fs.BoolVar(&rotate, "rotate", false, "Re-derive rules at the UTC day boundary")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logPath, "log-path", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogLevel: logLevel, LogPath: logPath},
		Agent: Agent{
			Address: agentAddress.String(),
		},
		Storage: Storage{
			DB:   DB{DSN: databaseDSN},
			Sync: Sync{RedisAddr: redisAddr},
		},
		Rules: Rules{
			Mode:     mode,
			IDSpace:  idSpace,
			MaxRules: maxRules,
		},
		Cache: Cache{TTL: cacheTTL},
		Adapter: Adapter{
			AgentAddress:   clientAgentAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RotateAtDayBoundary: rotate},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or an
// empty string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// host is "localhost".
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
