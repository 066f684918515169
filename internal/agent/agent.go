// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package agent

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/config"
	handler "github.com/MKhiriev/go-openpims/internal/handler/http"
	"github.com/MKhiriev/go-openpims/internal/injector"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/metrics"
	"github.com/MKhiriev/go-openpims/internal/pseudonym"
	"github.com/MKhiriev/go-openpims/internal/rules"
	"github.com/MKhiriev/go-openpims/internal/server"
	"github.com/MKhiriev/go-openpims/internal/service"
	"github.com/MKhiriev/go-openpims/internal/store"
	"github.com/MKhiriev/go-openpims/internal/workers"
	"github.com/MKhiriev/go-openpims/models"
)

// Agent is the long-running process holding the rule engine.
type Agent struct {
	storages *store.Storages
	metrics  *metrics.Metrics
	manager  *rules.Manager
	services *service.Services
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// New opens storage, binds the listener and wires every component. The
// returned agent owns the storage handles; call Close when done.
func New(ctx context.Context, cfg *config.AgentConfig, build models.AppBuildInfo, log *logger.Logger) (*Agent, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	m := metrics.New()
	cache := pseudonym.NewCache(log,
		pseudonym.WithTTL(cfg.Cache.TTL),
		pseudonym.WithObserver(m),
	)
	engine := rules.NewMemoryEngine(cfg.Rules.MaxRules)
	manager := rules.NewManager(engine, cache, storages.Local, storages.Sync, cfg.Rules, log, rules.WithRecorder(m))

	auth := service.NewAuthService(
		adapter.NewHTTPAuthAdapter(cfg.RequestTimeout, log),
		storages.Local,
		manager,
		cache,
		m,
		build.BuildVersion(),
		log,
	)
	pages := service.NewPageService(injector.New(storages.Local, cache, m, log), manager, engine, log)
	services := &service.Services{Auth: auth, Rules: manager, Pages: pages}

	h := handler.NewHandler(services, log,
		handler.WithMetrics(m.Handler()),
		handler.WithMessageRecorder(m),
		handler.WithVersion(build.BuildVersion()),
	)

	srv, err := server.NewServer(h.Init(), cfg.Address, cfg.ShutdownTimeout, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server: %w", err)
	}

	bg := []workers.Worker{
		workers.NewCredentialWatcher(storages.Local, manager, log),
		workers.NewCacheJanitor(cache, cfg.Cache.JanitorInterval, log),
	}
	if cfg.Workers.RotateAtDayBoundary {
		bg = append(bg, workers.NewRotationWorker(manager, log))
	}

	return &Agent{
		storages: storages,
		metrics:  m,
		manager:  manager,
		services: services,
		server:   srv,
		workers:  workers.New(bg...),
		logger:   log,
	}, nil
}

// Run performs the startup sync, starts the workers and serves the message
// channel until ctx is cancelled.
func (a *Agent) Run(ctx context.Context) error {
	if err := a.startupSync(ctx); err != nil {
		a.logger.Err(err).Str("func", "*Agent.Run").Msg("startup rule sync failed")
	}

	a.workers.Run(ctx)
	defer a.workers.Wait()

	a.logger.Info().
		Str("address", a.server.Addr().String()).
		Str("mode", a.manager.Mode()).
		Msg("agent running")

	return a.server.Run(ctx)
}

// startupSync installs the global rule from the synced URL in global mode.
// Per-domain mode starts empty: rules follow observed traffic.
func (a *Agent) startupSync(ctx context.Context) error {
	if a.manager.Mode() != config.RuleModeGlobal {
		return nil
	}
	return a.manager.SyncGlobal(ctx)
}

// Close releases storage. It must be called after Run returns.
func (a *Agent) Close() error {
	if err := a.storages.Close(); err != nil {
		return fmt.Errorf("close storages: %w", err)
	}
	return nil
}
