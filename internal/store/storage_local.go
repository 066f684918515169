// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// sqliteStorage is a KeyValueStorage over one scope of the storage table.
type sqliteStorage struct {
	db       *DB
	scope    models.StorageScope
	notifier *changeNotifier
	logger   *logger.Logger
}

// NewLocalStorage returns the local scope storage backed by db. Close must
// be called to stop the change dispatcher.
func NewLocalStorage(db *DB, log *logger.Logger) *LocalSQLiteStorage {
	return &LocalSQLiteStorage{sqliteStorage: newSQLiteStorage(db, models.ScopeLocal, log)}
}

func newSQLiteStorage(db *DB, scope models.StorageScope, log *logger.Logger) *sqliteStorage {
	return &sqliteStorage{
		db:       db,
		scope:    scope,
		notifier: newChangeNotifier(log),
		logger:   log,
	}
}

func (s *sqliteStorage) Get(ctx context.Context, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}

	query, args, err := s.db.selectValuesQuery(s.scope, keys)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Get").Str("scope", string(s.scope)).Msg("failed to query storage")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result[key] = value
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result, nil
}

func (s *sqliteStorage) Set(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	keys := slices.Sorted(maps.Keys(values))

	changes, err := s.inTx(ctx, keys, func(tx *sql.Tx, old map[string]string) (models.StorageChanges, error) {
		changes := make(models.StorageChanges, len(keys))
		for _, key := range keys {
			value := values[key]
			query, args, err := s.db.upsertValueQuery(s.scope, key, value)
			if err != nil {
				return nil, err
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return nil, fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
			}

			oldValue, existed := old[key]
			if existed && oldValue == value {
				continue
			}
			change := models.StorageChange{Key: key, NewValue: &value, Scope: s.scope}
			if existed {
				change.OldValue = &oldValue
			}
			changes[key] = change
		}
		return changes, nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Set").Str("scope", string(s.scope)).Msg("failed to set values")
		return err
	}

	s.notifier.publish(changes)
	return nil
}

func (s *sqliteStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	changes, err := s.inTx(ctx, keys, func(tx *sql.Tx, old map[string]string) (models.StorageChanges, error) {
		query, args, err := s.db.deleteValuesQuery(s.scope, keys)
		if err != nil {
			return nil, err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		changes := make(models.StorageChanges, len(old))
		for key, value := range old {
			changes[key] = models.StorageChange{Key: key, OldValue: &value, Scope: s.scope}
		}
		return changes, nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteStorage.Remove").Str("scope", string(s.scope)).Msg("failed to remove values")
		return err
	}

	s.notifier.publish(changes)
	return nil
}

func (s *sqliteStorage) OnChange(fn func(models.StorageChanges)) (cancel func()) {
	return s.notifier.subscribe(fn)
}

// Close stops the change dispatcher after delivering queued changes. The
// underlying DB is owned by the caller.
func (s *sqliteStorage) Close() {
	s.notifier.close()
}

// inTx reads the current values of keys, runs fn and commits. Changes are
// returned only when the commit succeeded.
func (s *sqliteStorage) inTx(ctx context.Context, keys []string, fn func(*sql.Tx, map[string]string) (models.StorageChanges, error)) (models.StorageChanges, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	old, err := s.selectInTx(ctx, tx, keys)
	if err != nil {
		return nil, err
	}

	changes, err := fn(tx, old)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return changes, nil
}

func (s *sqliteStorage) selectInTx(ctx context.Context, tx *sql.Tx, keys []string) (map[string]string, error) {
	query, args, err := s.db.selectValuesQuery(s.scope, keys)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	old := make(map[string]string, len(keys))
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		old[key] = value
	}

	return old, rows.Err()
}

// LocalSQLiteStorage is the local scope with the credential record helpers.
type LocalSQLiteStorage struct {
	*sqliteStorage
}

// LoadCredentials reads the credential record. Missing keys yield zero
// fields, so a partial record is reported as not authenticated.
func (s *LocalSQLiteStorage) LoadCredentials(ctx context.Context) (models.Credentials, error) {
	values, err := s.Get(ctx, models.CredentialKeys...)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	loggedIn, _ := strconv.ParseBool(values[models.KeyLoggedIn])

	return models.Credentials{
		UserID:    values[models.KeyUserID],
		Secret:    values[models.KeySecret],
		AppDomain: values[models.KeyAppDomain],
		LoggedIn:  loggedIn,
	}, nil
}

// SaveCredentials writes the whole record in one transaction.
func (s *LocalSQLiteStorage) SaveCredentials(ctx context.Context, creds models.Credentials) error {
	err := s.Set(ctx, map[string]string{
		models.KeyUserID:    creds.UserID,
		models.KeySecret:    creds.Secret,
		models.KeyAppDomain: creds.AppDomain,
		models.KeyLoggedIn:  strconv.FormatBool(creds.LoggedIn),
	})
	if err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// ClearCredentials removes every key of the record.
func (s *LocalSQLiteStorage) ClearCredentials(ctx context.Context) error {
	if err := s.Remove(ctx, models.CredentialKeys...); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
