// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newMemoryDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newMemoryLocal(t *testing.T) *LocalSQLiteStorage {
	t.Helper()
	s := NewLocalStorage(newMemoryDB(t), logger.Nop())
	t.Cleanup(s.Close)
	return s
}

func newMockLocal(t *testing.T) (*LocalSQLiteStorage, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	s := NewLocalStorage(newDB(conn, logger.Nop()), logger.Nop())
	t.Cleanup(s.Close)
	return s, mock
}

func subscribe(t *testing.T, s KeyValueStorage) <-chan models.StorageChanges {
	t.Helper()
	ch := make(chan models.StorageChanges, 16)
	cancel := s.OnChange(func(c models.StorageChanges) { ch <- c })
	t.Cleanup(cancel)
	return ch
}

func receive(t *testing.T, ch <-chan models.StorageChanges) models.StorageChanges {
	t.Helper()
	select {
	case c := <-ch:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no storage change delivered")
		return nil
	}
}

func assertNoChange(t *testing.T, ch <-chan models.StorageChanges) {
	t.Helper()
	select {
	case c := <-ch:
		t.Fatalf("unexpected storage change: %v", c)
	case <-time.After(50 * time.Millisecond):
	}
}

func ptr(s string) *string { return &s }

// ── Get / Set / Remove ────────────────────────────────────────────────────────

func TestLocalStorage_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)

	got, err := s.Get(ctx, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Set(ctx, map[string]string{"a": "1", "b": "2"}))
	got, err = s.Get(ctx, "a", "b", "missing")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got)

	require.NoError(t, s.Set(ctx, map[string]string{"a": "3"}))
	got, err = s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "3", got["a"])

	require.NoError(t, s.Remove(ctx, "a", "missing"))
	got, err = s.Get(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"b": "2"}, got)
}

func TestLocalStorage_ScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := newMemoryDB(t)
	local := NewLocalStorage(db, logger.Nop())
	defer local.Close()
	syncScope := NewSQLiteSyncStorage(db, logger.Nop())
	defer syncScope.Close()

	require.NoError(t, local.Set(ctx, map[string]string{models.KeyOpenPimsURL: "local"}))
	require.NoError(t, syncScope.SetSetting(ctx, models.KeyOpenPimsURL, "https://fallback.example"))

	v, err := syncScope.GetSetting(ctx, models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Equal(t, "https://fallback.example", v)

	got, err := local.Get(ctx, models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Equal(t, "local", got[models.KeyOpenPimsURL])
}

func TestSQLiteSyncStorage_MissingSettingIsEmpty(t *testing.T) {
	s := NewSQLiteSyncStorage(newMemoryDB(t), logger.Nop())
	defer s.Close()

	v, err := s.GetSetting(context.Background(), models.KeyOpenPimsURL)
	require.NoError(t, err)
	assert.Empty(t, v)
}

// ── OnChange ──────────────────────────────────────────────────────────────────

func TestLocalStorage_OnChangeReportsOldAndNew(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)
	ch := subscribe(t, s)

	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))
	c := receive(t, ch)
	assert.Equal(t, models.StorageChanges{
		"a": {Key: "a", NewValue: ptr("1"), Scope: models.ScopeLocal},
	}, c)

	require.NoError(t, s.Set(ctx, map[string]string{"a": "2"}))
	c = receive(t, ch)
	assert.Equal(t, ptr("1"), c["a"].OldValue)
	assert.Equal(t, ptr("2"), c["a"].NewValue)

	require.NoError(t, s.Remove(ctx, "a"))
	c = receive(t, ch)
	assert.Equal(t, ptr("2"), c["a"].OldValue)
	assert.Nil(t, c["a"].NewValue)
}

func TestLocalStorage_OnChangeSkipsNoops(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)
	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))

	ch := subscribe(t, s)
	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))
	require.NoError(t, s.Remove(ctx, "missing"))
	assertNoChange(t, ch)
}

func TestLocalStorage_OnChangeInCommitOrder(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)
	ch := subscribe(t, s)

	for _, v := range []string{"1", "2", "3"} {
		require.NoError(t, s.Set(ctx, map[string]string{"k": v}))
	}
	for _, v := range []string{"1", "2", "3"} {
		assert.Equal(t, ptr(v), receive(t, ch)["k"].NewValue)
	}
}

func TestLocalStorage_OnChangeCancel(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)

	ch := make(chan models.StorageChanges, 4)
	cancel := s.OnChange(func(c models.StorageChanges) { ch <- c })
	cancel()

	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))
	assertNoChange(t, ch)
}

func TestLocalStorage_PanickingSubscriberDoesNotStopDispatch(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)
	s.OnChange(func(models.StorageChanges) { panic("boom") })
	ch := subscribe(t, s)

	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))
	receive(t, ch)
	require.NoError(t, s.Set(ctx, map[string]string{"a": "2"}))
	receive(t, ch)
}

// ── credentials ───────────────────────────────────────────────────────────────

func TestLocalStorage_CredentialsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)

	creds, err := s.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.False(t, creds.IsAuthenticated())

	want := models.Credentials{UserID: "u", Secret: "s", AppDomain: "openpims.example", LoggedIn: true}
	require.NoError(t, s.SaveCredentials(ctx, want))

	creds, err = s.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, creds)
	assert.True(t, creds.IsAuthenticated())

	ch := subscribe(t, s)
	require.NoError(t, s.ClearCredentials(ctx))
	c := receive(t, ch)
	for _, key := range models.CredentialKeys {
		assert.True(t, c.Changed(key), key)
		assert.Nil(t, c[key].NewValue)
	}

	creds, err = s.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{}, creds)
}

func TestLocalStorage_PartialRecordIsNotAuthenticated(t *testing.T) {
	ctx := context.Background()
	s := newMemoryLocal(t)

	require.NoError(t, s.Set(ctx, map[string]string{
		models.KeyUserID:   "u",
		models.KeySecret:   "s",
		models.KeyLoggedIn: "true",
	}))

	creds, err := s.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.False(t, creds.IsAuthenticated())
}

// ── SQL failure paths (sqlmock) ───────────────────────────────────────────────

func TestLocalStorage_GetQueryError(t *testing.T) {
	s, mock := newMockLocal(t)
	mock.ExpectQuery(`SELECT key, value FROM storage`).WillReturnError(errors.New("db down"))

	_, err := s.Get(context.Background(), "a")
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_SetBeginError(t *testing.T) {
	s, mock := newMockLocal(t)
	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := s.Set(context.Background(), map[string]string{"a": "1"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalStorage_SetExecErrorRollsBackWithoutNotify(t *testing.T) {
	s, mock := newMockLocal(t)
	ch := subscribe(t, s)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT key, value FROM storage`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))
	mock.ExpectExec(`INSERT INTO storage`).
		WithArgs("local", "a", "1").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := s.Set(context.Background(), map[string]string{"a": "1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
	assertNoChange(t, ch)
}

func TestLocalStorage_CommitErrorDoesNotNotify(t *testing.T) {
	s, mock := newMockLocal(t)
	ch := subscribe(t, s)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT key, value FROM storage`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("a", "0"))
	mock.ExpectExec(`DELETE FROM storage`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(sql.ErrTxDone)

	err := s.Remove(context.Background(), "a")
	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
	assertNoChange(t, ch)
}

func TestLocalStorage_ClosedNotifierDropsChanges(t *testing.T) {
	ctx := context.Background()
	s := NewLocalStorage(newMemoryDB(t), logger.Nop())
	ch := subscribe(t, s)
	s.Close()

	require.NoError(t, s.Set(ctx, map[string]string{"a": "1"}))
	assertNoChange(t, ch)
}
