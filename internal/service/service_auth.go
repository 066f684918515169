// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/store"
	"github.com/MKhiriev/go-openpims/models"
)

// LoginRecorder counts login outcomes.
type LoginRecorder interface {
	LoginResult(ok bool)
}

type nopLoginRecorder struct{}

func (nopLoginRecorder) LoginResult(bool) {}

type authService struct {
	adapter   adapter.AuthAdapter
	creds     store.CredentialStorage
	rules     RuleManager
	pseudonym PseudonymSource
	recorder  LoginRecorder
	version   string
	logger    *logger.Logger
}

// NewAuthService wires the login flow. recorder may be nil.
func NewAuthService(
	authAdapter adapter.AuthAdapter,
	creds store.CredentialStorage,
	rules RuleManager,
	source PseudonymSource,
	recorder LoginRecorder,
	version string,
	log *logger.Logger,
) AuthService {
	if recorder == nil {
		recorder = nopLoginRecorder{}
	}

	return &authService{
		adapter:   authAdapter,
		creds:     creds,
		rules:     rules,
		pseudonym: source,
		recorder:  recorder,
		version:   version,
		logger:    log,
	}
}

func (a *authService) Login(ctx context.Context, email, password, serverURL string) (models.Status, error) {
	email = strings.TrimSpace(email)
	serverURL = strings.TrimSpace(serverURL)
	if email == "" || password == "" || serverURL == "" {
		return models.Status{}, ErrInvalidDataProvided
	}

	identity, err := a.adapter.Login(ctx, email, password, serverURL)
	if err != nil {
		a.recorder.LoginResult(false)
		a.logger.Err(err).Str("func", "authService.Login").Str("server", serverURL).Msg("login rejected")
		return models.Status{}, mapLoginError(err)
	}

	if err = a.creds.SaveCredentials(ctx, models.CredentialsFromIdentity(identity)); err != nil {
		a.recorder.LoginResult(false)
		return models.Status{}, fmt.Errorf("%w: %w", ErrSaveCredentials, err)
	}
	a.recorder.LoginResult(true)

	if err = a.rules.Sync(ctx); err != nil {
		a.logger.Err(err).Str("func", "authService.Login").Msg("rule sync after login failed")
	}

	return a.Status(ctx)
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.creds.ClearCredentials(ctx); err != nil {
		a.logger.Err(err).Str("func", "authService.Logout").Msg("clearing credentials failed")
	}
	if err := a.rules.Purge(ctx); err != nil {
		a.logger.Err(err).Str("func", "authService.Logout").Msg("purging rules failed")
	}
}

func (a *authService) Status(ctx context.Context) (models.Status, error) {
	creds, err := a.creds.LoadCredentials(ctx)
	if err != nil {
		return models.Status{}, fmt.Errorf("load credentials: %w", err)
	}

	active, err := a.rules.ActiveRules(ctx)
	if err != nil {
		return models.Status{}, fmt.Errorf("list rules: %w", err)
	}

	status := models.Status{
		LoggedIn:    creds.IsAuthenticated(),
		Mode:        a.rules.Mode(),
		ActiveRules: len(active),
		Observed:    len(a.rules.Observed()),
		Version:     a.version,
	}
	if status.LoggedIn {
		status.UserID = creds.UserID
		status.AppDomain = creds.AppDomain
	}

	return status, nil
}

func (a *authService) PseudonymFor(ctx context.Context, domain string) (models.Pseudonym, error) {
	if u, err := url.Parse(strings.TrimSpace(domain)); err == nil && u.Host != "" {
		domain = u.Host
	}
	host := pseudonym.NormalizeHost(domain)
	if host == "" {
		return models.Pseudonym{}, ErrInvalidDataProvided
	}

	creds, err := a.creds.LoadCredentials(ctx)
	if err != nil {
		return models.Pseudonym{}, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.IsAuthenticated() {
		return models.Pseudonym{}, ErrNotAuthenticated
	}

	return a.pseudonym.Get(ctx, host, creds.UserID, creds.Secret, creds.AppDomain)
}
