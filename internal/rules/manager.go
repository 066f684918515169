// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rules

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/store"
	"github.com/MKhiriev/go-openpims/models"
)

// HeaderName is the request header carrying the pseudonym URL.
const HeaderName = "x-openpims"

// GlobalRuleID is the fixed id of the global-mode rule.
const GlobalRuleID = 1

// DefaultIDSpace bounds hashed per-domain rule ids.
const DefaultIDSpace = 10000

// Recorder receives rule lifecycle metrics.
type Recorder interface {
	RuleInstalled(mode, outcome string)
	RulesActive(rules, observed int)
}

// Install outcomes reported to the [Recorder].
const (
	outcomeInstalled = "installed"
	outcomeFailed    = "failed"
	outcomeSkipped   = "skipped"
)

type nopRecorder struct{}

func (nopRecorder) RuleInstalled(string, string) {}
func (nopRecorder) RulesActive(int, int)         {}

// Manager owns the dynamic rule lifecycle and the observed-domain set.
type Manager struct {
	engine   Engine
	cache    *pseudonym.Cache
	creds    store.CredentialStorage
	settings store.SyncStorage
	recorder Recorder
	logger   *logger.Logger

	mode     string
	idSpace  int
	priority int

	// lifecycle is held shared by every install path and exclusively by
	// Purge, so a purge waits for in-flight installs and removes their rules.
	lifecycle sync.RWMutex

	mu       sync.Mutex
	observed map[string]int
	owners   map[int]string
}

// ManagerOption configures a [Manager].
type ManagerOption func(*Manager)

// WithRecorder registers a metrics recorder.
func WithRecorder(r Recorder) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.recorder = r
		}
	}
}

// NewManager creates a manager for the configured mode. The cache is owned
// by the manager's caller and shared with the injector.
func NewManager(
	engine Engine,
	cache *pseudonym.Cache,
	creds store.CredentialStorage,
	settings store.SyncStorage,
	cfg config.Rules,
	log *logger.Logger,
	opts ...ManagerOption,
) *Manager {
	m := &Manager{
		engine:   engine,
		cache:    cache,
		creds:    creds,
		settings: settings,
		recorder: nopRecorder{},
		logger:   log,
		mode:     cfg.Mode,
		idSpace:  cfg.IDSpace,
		priority: cfg.Priority,
		observed: make(map[string]int),
		owners:   make(map[int]string),
	}
	if m.mode == "" {
		m.mode = config.RuleModePerDomain
	}
	if m.idSpace < 1 {
		m.idSpace = DefaultIDSpace
	}
	if m.priority < 1 {
		m.priority = 1
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mode returns the configured rule mode.
func (m *Manager) Mode() string {
	return m.mode
}

// RuleID maps host into [1, space].
func RuleID(host string, space int) int {
	return 1 + int(xxhash.Sum64String(host)%uint64(space))
}

// Observe handles a request to host. In per-domain mode the first request
// to a host under an authenticated session installs its rule; the host is
// marked observed before installing so concurrent requests install once.
// A failed install unmarks the host so the next request retries.
//
// Credentials are read after the lifecycle lock is taken: an install that
// starts after a logout purge sees the cleared record and does nothing.
func (m *Manager) Observe(ctx context.Context, host string) error {
	if m.mode != config.RuleModePerDomain {
		return nil
	}
	host = pseudonym.NormalizeHost(host)
	if host == "" {
		return nil
	}

	m.lifecycle.RLock()
	defer m.lifecycle.RUnlock()

	creds, err := m.creds.LoadCredentials(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.Observe").Str("host", host).Msg("failed to load credentials")
		return fmt.Errorf("%w: %w", ErrRuleInstall, err)
	}
	if !creds.IsAuthenticated() {
		return nil
	}

	if !m.mark(host) {
		m.recorder.RuleInstalled(m.mode, outcomeSkipped)
		return nil
	}

	if err = m.install(ctx, host, creds); err != nil {
		m.unmark(host)
		m.recorder.RuleInstalled(m.mode, outcomeFailed)
		m.logger.Err(err).Str("func", "Manager.Observe").Str("host", host).Msg("failed to install per-domain rule")
		return err
	}
	m.recorder.RuleInstalled(m.mode, outcomeInstalled)
	m.reportActive(ctx)

	return nil
}

// SyncGlobal installs the global rule from the synced URL, replacing any
// previous one. An empty URL removes the rule.
func (m *Manager) SyncGlobal(ctx context.Context) error {
	m.lifecycle.RLock()
	defer m.lifecycle.RUnlock()

	url, err := m.settings.GetSetting(ctx, models.KeyOpenPimsURL)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.SyncGlobal").Msg("failed to read synced url")
		return fmt.Errorf("%w: %w", ErrRuleInstall, err)
	}

	update := models.RuleUpdate{RemoveRuleIDs: []int{GlobalRuleID}}
	if url != "" {
		update.AddRules = []models.Rule{GlobalRule(url, m.priority)}
	} else {
		m.logger.Warn().Str("func", "Manager.SyncGlobal").Msg("synced url is empty, global rule removed")
	}

	if err = m.engine.UpdateDynamicRules(ctx, update); err != nil {
		m.recorder.RuleInstalled(config.RuleModeGlobal, outcomeFailed)
		m.logger.Err(err).Str("func", "Manager.SyncGlobal").Msg("failed to install global rule")
		return fmt.Errorf("%w: global rule: %w", ErrRuleInstall, err)
	}
	m.recorder.RuleInstalled(config.RuleModeGlobal, outcomeInstalled)
	m.reportActive(ctx)

	return nil
}

// SetGlobalURL persists url in the synced scope and, in global mode,
// reinstalls the global rule.
func (m *Manager) SetGlobalURL(ctx context.Context, url string) error {
	if err := m.settings.SetSetting(ctx, models.KeyOpenPimsURL, url); err != nil {
		return fmt.Errorf("failed to save synced url: %w", err)
	}
	if m.mode != config.RuleModeGlobal {
		return nil
	}
	return m.SyncGlobal(ctx)
}

// GlobalURL returns the synced fallback URL.
func (m *Manager) GlobalURL(ctx context.Context) (string, error) {
	return m.settings.GetSetting(ctx, models.KeyOpenPimsURL)
}

// HandleChanges reacts to committed local-scope changes. A logout or a
// removed credential purges every rule; changed credentials of an
// authenticated session resynchronise.
func (m *Manager) HandleChanges(ctx context.Context, changes models.StorageChanges) {
	if !touchesCredentials(changes) {
		return
	}

	if loggedOut(changes) {
		if err := m.Purge(ctx); err != nil {
			m.logger.Err(err).Str("func", "Manager.HandleChanges").Msg("failed to purge rules")
		}
		return
	}

	creds, err := m.creds.LoadCredentials(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.HandleChanges").Msg("failed to load credentials")
		return
	}
	if !creds.IsAuthenticated() {
		return
	}

	if err = m.Sync(ctx); err != nil {
		m.logger.Err(err).Str("func", "Manager.HandleChanges").Msg("failed to resynchronise rules")
	}
}

// Sync brings the rule set in line with the current credentials: the
// global rule in global mode, every observed host in per-domain mode.
func (m *Manager) Sync(ctx context.Context) error {
	if m.mode == config.RuleModeGlobal {
		return m.SyncGlobal(ctx)
	}
	return m.reinstallObserved(ctx)
}

// Refresh re-derives every observed host, bypassing cached labels. It is
// used at the UTC day boundary.
func (m *Manager) Refresh(ctx context.Context) error {
	if m.mode == config.RuleModeGlobal {
		return nil
	}
	m.cache.Purge()
	return m.reinstallObserved(ctx)
}

// Purge removes every active dynamic rule and clears the observed set and
// the pseudonym cache. The local state is cleared even when the engine
// fails. It waits for installs already in flight so none of them can add
// a rule after the purge.
func (m *Manager) Purge(ctx context.Context) error {
	m.lifecycle.Lock()
	defer m.lifecycle.Unlock()

	m.mu.Lock()
	clear(m.observed)
	clear(m.owners)
	m.mu.Unlock()
	m.cache.Purge()

	active, err := m.engine.GetDynamicRules(ctx)
	if err != nil {
		return fmt.Errorf("failed to list dynamic rules: %w", err)
	}
	if len(active) == 0 {
		m.reportActive(ctx)
		return nil
	}

	ids := make([]int, 0, len(active))
	for _, rule := range active {
		ids = append(ids, rule.ID)
	}
	if err = m.engine.UpdateDynamicRules(ctx, models.RuleUpdate{RemoveRuleIDs: ids}); err != nil {
		return fmt.Errorf("failed to remove dynamic rules: %w", err)
	}
	m.logger.Info().Str("func", "Manager.Purge").Int("removed", len(ids)).Msg("dynamic rules purged")
	m.reportActive(ctx)

	return nil
}

// Observed returns the observed hosts in lexical order.
func (m *Manager) Observed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Sorted(maps.Keys(m.observed))
}

// ActiveRules returns the engine's dynamic rules.
func (m *Manager) ActiveRules(ctx context.Context) ([]models.Rule, error) {
	return m.engine.GetDynamicRules(ctx)
}

func (m *Manager) reinstallObserved(ctx context.Context) error {
	m.lifecycle.RLock()
	defer m.lifecycle.RUnlock()

	hosts := m.Observed()
	if len(hosts) == 0 {
		return nil
	}

	creds, err := m.creds.LoadCredentials(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRuleInstall, err)
	}
	if !creds.IsAuthenticated() {
		return nil
	}

	var errs []error
	for _, host := range hosts {
		if err = m.install(ctx, host, creds); err != nil {
			m.unmark(host)
			m.recorder.RuleInstalled(m.mode, outcomeFailed)
			errs = append(errs, err)
			continue
		}
		m.recorder.RuleInstalled(m.mode, outcomeInstalled)
	}
	m.reportActive(ctx)

	return errors.Join(errs...)
}

// install derives the pseudonym for host and replaces its rule.
func (m *Manager) install(ctx context.Context, host string, creds models.Credentials) error {
	url, err := m.cache.GetOrDerive(ctx, host, creds.UserID, creds.Secret, creds.AppDomain)
	if err != nil {
		return fmt.Errorf("%w: derive %s: %w", ErrRuleInstall, host, err)
	}

	id := RuleID(host, m.idSpace)
	update := models.RuleUpdate{
		RemoveRuleIDs: []int{id},
		AddRules:      []models.Rule{DomainRule(id, m.priority, host, url)},
	}
	if err = m.engine.UpdateDynamicRules(ctx, update); err != nil {
		return fmt.Errorf("%w: %s (id=%d): %w", ErrRuleInstall, host, id, err)
	}

	m.claim(host, id)
	return nil
}

// mark adds host to the observed set and reports whether it was new.
func (m *Manager) mark(host string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.observed[host]; ok {
		return false
	}
	m.observed[host] = 0
	return true
}

func (m *Manager) unmark(host string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id := m.observed[host]; id != 0 && m.owners[id] == host {
		delete(m.owners, id)
	}
	delete(m.observed, host)
}

// claim records host as the owner of rule id. A host whose rule was
// replaced by a colliding id leaves the observed set so its next request
// installs again.
func (m *Manager) claim(host string, id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.owners[id]; ok && prev != host {
		delete(m.observed, prev)
		m.logger.Warn().Str("func", "Manager.claim").Int("rule_id", id).
			Str("host", host).Str("replaced", prev).Msg("rule id collision")
	}
	m.owners[id] = host
	if _, ok := m.observed[host]; ok {
		m.observed[host] = id
	}
}

func (m *Manager) reportActive(ctx context.Context) {
	active, err := m.engine.GetDynamicRules(ctx)
	if err != nil {
		return
	}
	m.mu.Lock()
	observed := len(m.observed)
	m.mu.Unlock()
	m.recorder.RulesActive(len(active), observed)
}

// GlobalRule is the catch-all rule setting the header to url.
func GlobalRule(url string, priority int) models.Rule {
	return models.Rule{
		ID:       GlobalRuleID,
		Priority: priority,
		Action:   headerAction(url),
		Condition: models.RuleCondition{
			URLFilter:     "*",
			ResourceTypes: slices.Clone(models.ResourceTypes),
		},
	}
}

// DomainRule is the per-domain rule setting the header to url for requests
// to host.
func DomainRule(id, priority int, host, url string) models.Rule {
	return models.Rule{
		ID:       id,
		Priority: priority,
		Action:   headerAction(url),
		Condition: models.RuleCondition{
			RequestDomains: []string{host},
			ResourceTypes:  slices.Clone(models.ResourceTypes),
		},
	}
}

func headerAction(url string) models.RuleAction {
	return models.RuleAction{
		Type: models.RuleActionModifyHeaders,
		RequestHeaders: []models.HeaderInfo{{
			Header:    HeaderName,
			Operation: models.HeaderOperationSet,
			Value:     url,
		}},
	}
}

func touchesCredentials(changes models.StorageChanges) bool {
	for _, key := range models.CredentialKeys {
		if c, ok := changes[key]; ok && c.Scope != models.ScopeSync {
			return true
		}
	}
	return false
}

func loggedOut(changes models.StorageChanges) bool {
	if c, ok := changes[models.KeyLoggedIn]; ok {
		if c.NewValue == nil || *c.NewValue != "true" {
			return true
		}
	}
	for _, key := range []string{models.KeyUserID, models.KeySecret, models.KeyAppDomain} {
		if c, ok := changes[key]; ok && c.NewValue == nil {
			return true
		}
	}
	return false
}
