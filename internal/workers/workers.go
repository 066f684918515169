// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker on its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
