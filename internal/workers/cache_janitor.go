// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
)

const defaultJanitorInterval = time.Hour

// CacheJanitor evicts expired pseudonyms on a fixed interval.
type CacheJanitor struct {
	cache    Evicter
	interval time.Duration
	logger   *logger.Logger
}

// NewCacheJanitor falls back to one hour for a non-positive interval.
func NewCacheJanitor(cache Evicter, interval time.Duration, log *logger.Logger) *CacheJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	return &CacheJanitor{cache: cache, interval: interval, logger: log}
}

func (j *CacheJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := j.cache.Evict(); n > 0 {
				j.logger.Debug().Int("evicted", n).Msg("pseudonym cache cleanup")
			}
		}
	}
}
