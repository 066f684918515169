// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
)

// Storages aggregates both storage scopes used by the agent.
type Storages struct {
	Local *LocalSQLiteStorage
	Sync  SyncStorage

	db     *DB
	closer []func() error
}

// NewStorages opens the sqlite database and builds both scopes. The synced
// scope lives in redis when cfg.Sync.RedisAddr is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	s := &Storages{
		Local: NewLocalStorage(db, log),
		db:    db,
	}
	s.closer = append(s.closer, func() error { s.Local.Close(); return nil })

	if cfg.Sync.RedisAddr != "" {
		redisSync, err := NewRedisSyncStorage(ctx, cfg.Sync, log)
		if err != nil {
			s.Close()
			db.Close()
			return nil, err
		}
		s.Sync = redisSync
		s.closer = append(s.closer, redisSync.Close)
	} else {
		sqliteSync := NewSQLiteSyncStorage(db, log)
		s.Sync = sqliteSync
		s.closer = append(s.closer, func() error { sqliteSync.Close(); return nil })
	}
	s.closer = append(s.closer, db.Close)

	return s, nil
}

// Close releases both scopes and the database.
func (s *Storages) Close() error {
	var errs []error
	for _, closeFn := range s.closer {
		errs = append(errs, closeFn())
	}
	s.closer = nil
	return errors.Join(errs...)
}
