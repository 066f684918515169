// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// SQLiteSyncStorage keeps the synced scope in the shared sqlite file.
type SQLiteSyncStorage struct {
	*sqliteStorage
}

// NewSQLiteSyncStorage returns the synced scope backed by db.
func NewSQLiteSyncStorage(db *DB, log *logger.Logger) *SQLiteSyncStorage {
	return &SQLiteSyncStorage{sqliteStorage: newSQLiteStorage(db, models.ScopeSync, log)}
}

func (s *SQLiteSyncStorage) GetSetting(ctx context.Context, key string) (string, error) {
	values, err := s.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return values[key], nil
}

func (s *SQLiteSyncStorage) SetSetting(ctx context.Context, key, value string) error {
	if err := s.Set(ctx, map[string]string{key: value}); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// RedisSyncStorage keeps the synced scope in redis so several agents share
// the same settings.
type RedisSyncStorage struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
}

// NewRedisSyncStorage connects to the redis instance described by cfg.
func NewRedisSyncStorage(ctx context.Context, cfg config.Sync, log *logger.Logger) (*RedisSyncStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisSyncStorage").Str("addr", cfg.RedisAddr).Msg("error connecting redis")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return newRedisSyncStorage(client, cfg.KeyPrefix, log), nil
}

func newRedisSyncStorage(client *redis.Client, prefix string, log *logger.Logger) *RedisSyncStorage {
	return &RedisSyncStorage{client: client, prefix: prefix, logger: log}
}

func (s *RedisSyncStorage) GetSetting(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "RedisSyncStorage.GetSetting").Str("key", key).Msg("failed to get setting")
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *RedisSyncStorage) SetSetting(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.logger.Err(err).Str("func", "RedisSyncStorage.SetSetting").Str("key", key).Msg("failed to set setting")
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}

// Close closes the redis client.
func (s *RedisSyncStorage) Close() error {
	return s.client.Close()
}
