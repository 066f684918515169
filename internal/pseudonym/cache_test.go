// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pseudonym

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDeriver wraps Engine and counts invocations.
type countingDeriver struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (d *countingDeriver) Derive(userID, secret, domain string, dayEpoch int64) (string, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
	if d.err != nil {
		return "", d.err
	}
	return Engine{}.Derive(userID, secret, domain, dayEpoch)
}

func (d *countingDeriver) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type countingObserver struct {
	hits, misses int
}

func (o *countingObserver) CacheHit()  { o.hits++ }
func (o *countingObserver) CacheMiss() { o.misses++ }

func newTestCache(t *testing.T) (*Cache, *countingDeriver, *fakeClock) {
	t.Helper()
	d := &countingDeriver{}
	clock := &fakeClock{now: time.Date(2025, 10, 16, 8, 0, 0, 0, time.UTC)}
	return NewCache(logger.Nop(), WithDeriver(d), WithClock(clock.Now)), d, clock
}

func TestCache_GetOrDerive_ReturnsFullURL(t *testing.T) {
	c, _, clock := newTestCache(t)

	got, err := c.GetOrDerive(context.Background(), "example.com", "user-42", "s3cr3t", "openpims.de")
	require.NoError(t, err)

	label, err := Derive("user-42", "s3cr3t", "example.com", DayEpoch(clock.Now()))
	require.NoError(t, err)
	assert.Equal(t, "https://"+label+".openpims.de", got)
}

// TestCache_FreshEntryNotRecomputed verifies that an entry younger than the
// TTL is served without calling the deriver.
func TestCache_FreshEntryNotRecomputed(t *testing.T) {
	c, d, clock := newTestCache(t)
	ctx := context.Background()

	first, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)
	require.Equal(t, 1, d.count())

	clock.Advance(23 * time.Hour)
	second, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, d.count())
}

// TestCache_ExpiredEntryRecomputed verifies that an entry older than the TTL
// triggers a new derivation.
func TestCache_ExpiredEntryRecomputed(t *testing.T) {
	c, d, clock := newTestCache(t)
	ctx := context.Background()

	first, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)

	clock.Advance(24*time.Hour + time.Second)
	second, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)

	assert.Equal(t, 2, d.count())
	assert.NotEqual(t, first, second, "a day later the label rotates")
}

func TestCache_DifferentCredentialsMiss(t *testing.T) {
	c, d, _ := newTestCache(t)
	ctx := context.Background()

	a, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)
	b, err := c.GetOrDerive(ctx, "example.com", "u2", "key", "openpims.de")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, d.count())
}

func TestCache_NormalizesDomain(t *testing.T) {
	c, d, _ := newTestCache(t)
	ctx := context.Background()

	a, err := c.GetOrDerive(ctx, "Example.com:443", "u1", "key", "openpims.de")
	require.NoError(t, err)
	b, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, 1, d.count())
}

func TestCache_DeriveErrorNotCached(t *testing.T) {
	boom := errors.New("boom")
	d := &countingDeriver{err: boom}
	c := NewCache(logger.Nop(), WithDeriver(d))

	_, err := c.GetOrDerive(context.Background(), "example.com", "u1", "key", "openpims.de")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())
}

func TestCache_CryptoKeyErrorPropagates(t *testing.T) {
	c := NewCache(logger.Nop())

	_, err := c.GetOrDerive(context.Background(), "example.com", "u1", "", "openpims.de")
	assert.ErrorIs(t, err, ErrCryptoKey)
}

func TestCache_EvictAndPurge(t *testing.T) {
	c, _, clock := newTestCache(t)
	ctx := context.Background()

	_, err := c.GetOrDerive(ctx, "old.example", "u1", "key", "openpims.de")
	require.NoError(t, err)
	clock.Advance(20 * time.Hour)
	_, err = c.GetOrDerive(ctx, "new.example", "u1", "key", "openpims.de")
	require.NoError(t, err)
	clock.Advance(5 * time.Hour)

	assert.Equal(t, 1, c.Evict())
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCache_Observer(t *testing.T) {
	obs := &countingObserver{}
	c := NewCache(logger.Nop(), WithObserver(obs), WithTTL(time.Hour))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, obs.misses)
	assert.Equal(t, 2, obs.hits)
}

func TestCache_ConcurrentCallsDeriveOnce(t *testing.T) {
	c, d, _ := newTestCache(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrDerive(ctx, "example.com", "u1", "key", "openpims.de")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, d.count())
}
