package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFields(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, rest, err := ParseFlags(fs, []string{
		"-a", "127.0.0.1:9000",
		"-agent", "localhost:9001",
		"-redis", "localhost:6379",
		"-id-space", "500",
		"-max-rules", "50",
		"-cache-ttl", "30m",
		"-request-timeout", "3s",
		"-rotate",
		"-log-level", "debug",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "127.0.0.1:9000", cfg.Agent.Address)
	assert.Equal(t, "localhost:9001", cfg.Adapter.AgentAddress)
	assert.Equal(t, "localhost:6379", cfg.Storage.Sync.RedisAddr)
	assert.Equal(t, 500, cfg.Rules.IDSpace)
	assert.Equal(t, 50, cfg.Rules.MaxRules)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.True(t, cfg.Workers.RotateAtDayBoundary)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestParseFlags_UnsetAddressIsEmpty(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, _, err := ParseFlags(fs, nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Agent.Address)
	assert.Empty(t, cfg.Adapter.AgentAddress)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "127.0.0.1:8080", want: "127.0.0.1:8080"},
		{in: "localhost:1", want: "localhost:1"},
		{in: "[::1]:443", want: "[::1]:443"},
		{in: "no-port", wantErr: true},
		{in: "127.0.0.1:0", wantErr: true},
		{in: "127.0.0.1:70000", wantErr: true},
		{in: "example.com:80", wantErr: true},
		{in: "127.0.0.1:http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}
