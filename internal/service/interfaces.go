// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-openpims/models"
)

// AuthService drives the login flow and answers questions about the
// current session.
type AuthService interface {
	// Login authenticates against serverURL, persists the returned identity
	// as a logged-in credential record and brings the header rules in line
	// with it before returning. Failures are [*LoginError] values or
	// [ErrInvalidDataProvided].
	Login(ctx context.Context, email, password, serverURL string) (models.Status, error)

	// Logout clears the credential record and every installed rule. It is
	// best-effort and idempotent; failures are logged, never returned.
	Logout(ctx context.Context)

	// Status reports the session and rule state.
	Status(ctx context.Context) (models.Status, error)

	// PseudonymFor returns the pseudonym of domain for the logged-in user.
	PseudonymFor(ctx context.Context, domain string) (models.Pseudonym, error)
}

// PageService prepares document loads the way the browser extension does.
type PageService interface {
	// Open reports the host of rawURL to the rule manager, injects the page
	// and returns the header and cookie its main-frame request carries.
	// URLs without a host yield [ErrInvalidDataProvided].
	Open(ctx context.Context, rawURL string) (models.PageContext, error)
}

// RuleManager is the part of the header-rule manager the message channel
// and the login flow depend on. [*rules.Manager] implements it.
type RuleManager interface {
	Mode() string
	Observe(ctx context.Context, host string) error
	Sync(ctx context.Context) error
	Purge(ctx context.Context) error
	Observed() []string
	ActiveRules(ctx context.Context) ([]models.Rule, error)
	GlobalURL(ctx context.Context) (string, error)
	SetGlobalURL(ctx context.Context, url string) error
}

// PseudonymSource yields pseudonyms for a domain and credential triple.
// [*pseudonym.Cache] implements it.
type PseudonymSource interface {
	Get(ctx context.Context, domain, userID, secret, appDomain string) (models.Pseudonym, error)
}
