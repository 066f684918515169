// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pseudonym

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

// DefaultTTL is the freshness window of a cached pseudonym.
const DefaultTTL = 24 * time.Hour

// CacheObserver receives cache hit/miss notifications (metrics).
type CacheObserver interface {
	CacheHit()
	CacheMiss()
}

// Cache memoizes the derived pseudonym URL per domain. It is owned by the
// component that constructs it and is never persisted.
type Cache struct {
	deriver  Deriver
	ttl      time.Duration
	now      func() time.Time
	observer CacheObserver
	logger   *logger.Logger

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	pseudonym models.Pseudonym

	userID    string
	secret    string
	appDomain string
}

func (e cacheEntry) sameInputs(userID, secret, appDomain string) bool {
	return e.userID == userID && e.secret == secret && e.appDomain == appDomain
}

// CacheOption configures a [Cache].
type CacheOption func(*Cache)

// WithTTL overrides [DefaultTTL]. Non-positive values are ignored.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithClock sets the wall clock used for freshness and day-epoch checks.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithDeriver replaces the default [Engine].
func WithDeriver(d Deriver) CacheOption {
	return func(c *Cache) {
		if d != nil {
			c.deriver = d
		}
	}
}

// WithObserver registers a hit/miss observer.
func WithObserver(o CacheObserver) CacheOption {
	return func(c *Cache) {
		c.observer = o
	}
}

// NewCache creates an empty cache.
func NewCache(log *logger.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		deriver: Engine{},
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  log,
		entries: make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrDerive returns the pseudonym URL for domain. A fresh entry derived
// from the same user, secret and app domain is returned without invoking
// the deriver; anything else is recomputed and stored.
//
// Freshness is measured from the last computation, not aligned to the UTC
// day boundary, so a label may outlive its day-epoch by up to the TTL.
func (c *Cache) GetOrDerive(ctx context.Context, domain, userID, secret, appDomain string) (string, error) {
	p, err := c.Get(ctx, domain, userID, secret, appDomain)
	if err != nil {
		return "", err
	}
	return p.FullURL, nil
}

// Get is [Cache.GetOrDerive] returning the whole [models.Pseudonym].
func (c *Cache) Get(ctx context.Context, domain, userID, secret, appDomain string) (models.Pseudonym, error) {
	domain = NormalizeHost(domain)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[domain]; ok && e.sameInputs(userID, secret, appDomain) && now.Sub(e.pseudonym.DerivedAt) < c.ttl {
		c.hit()
		return e.pseudonym, nil
	}
	c.miss()

	label, err := c.deriver.Derive(userID, secret, domain, DayEpoch(now))
	if err != nil {
		c.logger.Err(err).
			Str("func", "Cache.Get").
			Str("domain", domain).
			Msg("pseudonym derivation failed")
		return models.Pseudonym{}, err
	}

	p := models.Pseudonym{
		Domain:    domain,
		Label:     label,
		FullURL:   FullURL(label, appDomain),
		DerivedAt: now,
	}
	c.entries[domain] = cacheEntry{pseudonym: p, userID: userID, secret: secret, appDomain: appDomain}

	return p, nil
}

// Evict drops expired entries and returns how many were removed.
func (c *Cache) Evict() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for domain, e := range c.entries {
		if now.Sub(e.pseudonym.DerivedAt) >= c.ttl {
			delete(c.entries, domain)
			removed++
		}
	}
	return removed
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of cached domains.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache) hit() {
	if c.observer != nil {
		c.observer.CacheHit()
	}
}

func (c *Cache) miss() {
	if c.observer != nil {
		c.observer.CacheMiss()
	}
}
