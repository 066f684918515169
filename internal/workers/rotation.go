// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
)

// RotationWorker refreshes installed rules right after every UTC day
// boundary, when every pseudonym label changes.
type RotationWorker struct {
	refresher Refresher
	now       func() time.Time
	after     func(time.Duration) <-chan time.Time
	logger    *logger.Logger
}

func NewRotationWorker(refresher Refresher, log *logger.Logger) *RotationWorker {
	return &RotationWorker{
		refresher: refresher,
		now:       time.Now,
		after:     time.After,
		logger:    log,
	}
}

func (w *RotationWorker) Run(ctx context.Context) {
	for {
		now := w.now()
		wait := pseudonym.NextDayBoundary(now).Sub(now)

		select {
		case <-ctx.Done():
			return
		case <-w.after(wait):
		}

		if err := w.refresher.Refresh(ctx); err != nil {
			w.logger.Err(err).Str("func", "*RotationWorker.Run").Msg("day rotation refresh failed")
			continue
		}
		w.logger.Info().Int64("day", pseudonym.DayEpoch(w.now())).Msg("pseudonyms rotated")
	}
}
