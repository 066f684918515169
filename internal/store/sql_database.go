// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/migrations"
)

// DB wraps the sqlite connection shared by both storage scopes.
type DB struct {
	*sql.DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
