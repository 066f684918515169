// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// TestRedisSyncStorage runs against a live redis pointed to by
// OPENPIMS_TEST_REDIS_ADDR.
func TestRedisSyncStorage(t *testing.T) {
	addr := os.Getenv("OPENPIMS_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("OPENPIMS_TEST_REDIS_ADDR is not set")
	}
	ctx := context.Background()

	s, err := NewRedisSyncStorage(ctx, config.Sync{RedisAddr: addr, KeyPrefix: "openpims:test:"}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()
	t.Cleanup(func() { s.client.Del(ctx, "openpims:test:"+models.KeyOpenPimsURL) })

	v, err := s.GetSetting(ctx, models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.SetSetting(ctx, models.KeyOpenPimsURL, "https://fallback.example"))
	v, err = s.GetSetting(ctx, models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example", v)
}

func TestRedisSyncStorage_Unreachable(t *testing.T) {
	_, err := NewRedisSyncStorage(context.Background(), config.Sync{RedisAddr: "127.0.0.1:1"}, logger.Nop())
	assert.Error(t, err)
}

func TestRedisSyncStorage_ClosedClientErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	s := newRedisSyncStorage(client, "p:", logger.Nop())
	require.NoError(t, s.Close())

	_, err := s.GetSetting(context.Background(), models.KeyOpenPimsURL)
	assert.Error(t, err)
	assert.Error(t, s.SetSetting(context.Background(), models.KeyOpenPimsURL, "x"))
}

func TestNewStorages_SQLiteSync(t *testing.T) {
	ctx := context.Background()
	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, isSQLite := s.Sync.(*SQLiteSyncStorage)
	assert.True(t, isSQLite)

	require.NoError(t, s.Sync.SetSetting(ctx, models.KeyOpenPimsURL, "u"))
	v, err := s.Sync.GetSetting(ctx, models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Equal(t, "u", v)
}

func TestNewStorages_FileDSN(t *testing.T) {
	dsn := t.TempDir() + "/nested/openpims.db"
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = os.Stat(dsn)
	assert.NoError(t, err)
}
