// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-openpims/internal/injector"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/mock"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/rules"
	"github.com/MKhiriev/go-openpims/models"
)

type injectCounter struct{ n int }

func (c *injectCounter) PageInjected() { c.n++ }

type pageMocks struct {
	creds   *mock.MockCredentialStorage
	rules   *mock.MockRuleManager
	engine  *rules.MemoryEngine
	counter *injectCounter
}

func newTestPageSvc(t *testing.T) (PageService, pageMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := pageMocks{
		creds:   mock.NewMockCredentialStorage(ctrl),
		rules:   mock.NewMockRuleManager(ctrl),
		engine:  rules.NewMemoryEngine(0),
		counter: &injectCounter{},
	}
	inj := injector.New(m.creds, pseudonym.NewCache(logger.Nop()), m.counter, logger.Nop())

	return NewPageService(inj, m.rules, m.engine, logger.Nop()), m
}

func TestPageService_Open_GlobalRule(t *testing.T) {
	svc, m := newTestPageSvc(t)
	ctx := context.Background()

	global := rules.GlobalRule("https://me.openpims.example", 1)
	require.NoError(t, m.engine.UpdateDynamicRules(ctx, models.RuleUpdate{AddRules: []models.Rule{global}}))

	m.rules.EXPECT().Observe(gomock.Any(), "shop.example").Return(nil)
	m.rules.EXPECT().ActiveRules(gomock.Any()).Return([]models.Rule{global}, nil)
	m.creds.EXPECT().LoadCredentials(gomock.Any()).Return(testCreds, nil)

	pc, err := svc.Open(ctx, "https://Shop.Example/cart")
	require.NoError(t, err)

	label, err := pseudonym.Derive(testCreds.UserID, testCreds.Secret, "shop.example", pseudonym.DayEpoch(time.Now()))
	require.NoError(t, err)

	assert.Equal(t, "shop.example", pc.Host)
	assert.Equal(t, "https://me.openpims.example", pc.Header)
	assert.Equal(t, pseudonym.FullURL(label, testCreds.AppDomain), pc.Cookie)
	assert.Equal(t, 1, pc.Rules)
	assert.Equal(t, 1, m.counter.n)
}

func TestPageService_Open_NotLoggedIn(t *testing.T) {
	svc, m := newTestPageSvc(t)

	m.rules.EXPECT().Observe(gomock.Any(), "shop.example").Return(nil)
	m.rules.EXPECT().ActiveRules(gomock.Any()).Return(nil, nil)
	m.creds.EXPECT().LoadCredentials(gomock.Any()).Return(models.Credentials{}, nil)

	pc, err := svc.Open(context.Background(), "https://shop.example/")
	require.NoError(t, err)

	assert.Empty(t, pc.Header)
	assert.Empty(t, pc.Cookie)
	assert.Zero(t, pc.Rules)
	assert.Zero(t, m.counter.n)
}

func TestPageService_Open_ObserveFailureStillLoads(t *testing.T) {
	svc, m := newTestPageSvc(t)

	m.rules.EXPECT().Observe(gomock.Any(), "shop.example").Return(assert.AnError)
	m.rules.EXPECT().ActiveRules(gomock.Any()).Return(nil, nil)
	m.creds.EXPECT().LoadCredentials(gomock.Any()).Return(testCreds, nil)

	pc, err := svc.Open(context.Background(), "https://shop.example/")
	require.NoError(t, err)
	assert.NotEmpty(t, pc.Cookie)
}

func TestPageService_Open_InvalidURL(t *testing.T) {
	svc, _ := newTestPageSvc(t)

	for _, raw := range []string{"", "not a url", "https://"} {
		_, err := svc.Open(context.Background(), raw)
		assert.ErrorIs(t, err, ErrInvalidDataProvided, raw)
	}
}
