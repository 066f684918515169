// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StorageScope names one of the two durable key-value scopes.
type StorageScope string

const (
	// ScopeLocal holds the credential record.
	ScopeLocal StorageScope = "local"
	// ScopeSync holds simple synced settings such as the fallback URL.
	ScopeSync StorageScope = "sync"
)

// StorageChange describes the change of a single key. A missing value is
// reported as nil.
type StorageChange struct {
	Key      string       `json:"key"`
	OldValue *string      `json:"oldValue,omitempty"`
	NewValue *string      `json:"newValue,omitempty"`
	Scope    StorageScope `json:"scope"`
}

// StorageChanges groups the per-key changes produced by one Set or Remove
// call, keyed by storage key.
type StorageChanges map[string]StorageChange

// Changed reports whether key is part of the change set.
func (c StorageChanges) Changed(key string) bool {
	_, ok := c[key]
	return ok
}
