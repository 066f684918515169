// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// CredentialWatcher forwards every committed change of the local scope to
// the rule manager, so a login, logout or secret rotation made by any
// process sharing the store is reflected in the installed rules.
type CredentialWatcher struct {
	source  ChangeSource
	handler ChangeHandler
	logger  *logger.Logger
}

func NewCredentialWatcher(source ChangeSource, handler ChangeHandler, log *logger.Logger) *CredentialWatcher {
	return &CredentialWatcher{source: source, handler: handler, logger: log}
}

func (w *CredentialWatcher) Run(ctx context.Context) {
	cancel := w.source.OnChange(func(changes models.StorageChanges) {
		if ctx.Err() != nil {
			return
		}
		w.handler.HandleChanges(ctx, changes)
	})
	defer cancel()

	w.logger.Debug().Msg("credential watcher started")
	<-ctx.Done()
	w.logger.Debug().Msg("credential watcher stopped")
}
