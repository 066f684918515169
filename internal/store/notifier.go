// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"maps"
	"slices"
	"sync"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

const notifierBuffer = 64

// changeNotifier delivers committed change sets to subscribers from a single
// goroutine, preserving commit order.
type changeNotifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(models.StorageChanges)

	queueMu sync.RWMutex
	queue   chan models.StorageChanges
	closed  bool
	done    chan struct{}
	once    sync.Once
	logger  *logger.Logger
}

func newChangeNotifier(log *logger.Logger) *changeNotifier {
	n := &changeNotifier{
		subs:   make(map[int]func(models.StorageChanges)),
		queue:  make(chan models.StorageChanges, notifierBuffer),
		done:   make(chan struct{}),
		logger: log,
	}
	go n.dispatch()
	return n
}

func (n *changeNotifier) subscribe(fn func(models.StorageChanges)) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.subs[id] = fn

	return func() {
		n.mu.Lock()
		delete(n.subs, id)
		n.mu.Unlock()
	}
}

// publish enqueues changes. It blocks when the queue is full so that no
// change set is dropped.
func (n *changeNotifier) publish(changes models.StorageChanges) {
	if len(changes) == 0 {
		return
	}

	n.queueMu.RLock()
	defer n.queueMu.RUnlock()
	if n.closed {
		return
	}
	n.queue <- changes
}

func (n *changeNotifier) dispatch() {
	defer close(n.done)

	for changes := range n.queue {
		n.mu.Lock()
		ids := slices.Sorted(maps.Keys(n.subs))
		subs := make([]func(models.StorageChanges), 0, len(ids))
		for _, id := range ids {
			subs = append(subs, n.subs[id])
		}
		n.mu.Unlock()

		for _, fn := range subs {
			n.call(fn, changes)
		}
	}
}

func (n *changeNotifier) call(fn func(models.StorageChanges), changes models.StorageChanges) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error().Str("func", "changeNotifier.call").Interface("panic", r).Msg("storage change subscriber panicked")
		}
	}()
	fn(changes)
}

// close stops accepting changes and waits for queued ones to be delivered.
func (n *changeNotifier) close() {
	n.once.Do(func() {
		n.queueMu.Lock()
		n.closed = true
		close(n.queue)
		n.queueMu.Unlock()
		<-n.done
	})
}
