// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-openpims/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a durable key-value scope with change notifications.
type KeyValueStorage interface {
	// Get returns the stored values of keys. Missing keys are absent from
	// the result.
	Get(ctx context.Context, keys ...string) (map[string]string, error)
	// Set writes all values in one transaction.
	Set(ctx context.Context, values map[string]string) error
	// Remove deletes keys in one transaction. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
	// OnChange registers fn for committed changes. Calls are made in commit
	// order on a single goroutine. The returned func unregisters fn.
	OnChange(fn func(models.StorageChanges)) (cancel func())
}

// CredentialStorage reads and writes the credential record.
type CredentialStorage interface {
	LoadCredentials(ctx context.Context) (models.Credentials, error)
	SaveCredentials(ctx context.Context, creds models.Credentials) error
	ClearCredentials(ctx context.Context) error
}

// LocalStorage is the local scope holding the credential record.
type LocalStorage interface {
	KeyValueStorage
	CredentialStorage
}

// SyncStorage holds the synced settings. GetSetting returns "" for a
// missing key.
type SyncStorage interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
