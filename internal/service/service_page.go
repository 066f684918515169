// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-openpims/internal/injector"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/rules"
	"github.com/MKhiriev/go-openpims/models"
)

// PageInjector sets up a page context. [*injector.Injector] implements it.
type PageInjector interface {
	Inject(ctx context.Context, page *injector.Page)
}

type pageService struct {
	injector PageInjector
	rules    RuleManager
	modifier rules.RequestModifier
	logger   *logger.Logger
}

// NewPageService wires page loads to the agent's rule manager, rule engine
// and injector.
func NewPageService(inj PageInjector, manager RuleManager, modifier rules.RequestModifier, log *logger.Logger) PageService {
	return &pageService{
		injector: inj,
		rules:    manager,
		modifier: modifier,
		logger:   log,
	}
}

func (s *pageService) Open(ctx context.Context, rawURL string) (models.PageContext, error) {
	page, err := injector.NewPage(rawURL)
	if err != nil {
		return models.PageContext{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	host := pseudonym.NormalizeHost(page.Hostname)
	if err = s.rules.Observe(ctx, host); err != nil {
		s.logger.Err(err).Str("func", "*pageService.Open").Str("host", host).Msg("failed to observe page host")
	}

	s.injector.Inject(ctx, page)

	req, err := http.NewRequestWithContext(rules.WithResourceType(ctx, "main_frame"), http.MethodGet, page.URL.String(), nil)
	if err != nil {
		return models.PageContext{}, fmt.Errorf("build page request: %w", err)
	}
	s.modifier.Apply(req)

	active, err := s.rules.ActiveRules(ctx)
	if err != nil {
		return models.PageContext{}, fmt.Errorf("list active rules: %w", err)
	}

	pc := models.PageContext{
		URL:    page.URL.String(),
		Host:   host,
		Header: req.Header.Get(rules.HeaderName),
		Rules:  len(active),
	}
	pc.Cookie, _ = page.Cookie(injector.CookieName)

	return pc, nil
}
