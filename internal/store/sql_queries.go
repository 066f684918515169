// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-openpims/models"
)

const storageTable = "storage"

// selectValuesQuery builds SELECT key, value for the given keys of a scope.
func (db *DB) selectValuesQuery(scope models.StorageScope, keys []string) (string, []any, error) {
	query, args, err := db.builder.
		Select("key", "value").
		From(storageTable).
		Where(sq.Eq{"scope": string(scope), "key": keys}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// upsertValueQuery builds an insert-or-replace of one key.
func (db *DB) upsertValueQuery(scope models.StorageScope, key, value string) (string, []any, error) {
	query, args, err := db.builder.
		Insert(storageTable).
		Columns("scope", "key", "value").
		Values(string(scope), key, value).
		Suffix("ON CONFLICT(scope, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// deleteValuesQuery builds a delete of the given keys of a scope.
func (db *DB) deleteValuesQuery(scope models.StorageScope, keys []string) (string, []any, error) {
	query, args, err := db.builder.
		Delete(storageTable).
		Where(sq.Eq{"scope": string(scope), "key": keys}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
