// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-openpims/internal/adapter"
	"github.com/MKhiriev/go-openpims/internal/client"
	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/internal/tui"
	"github.com/MKhiriev/go-openpims/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("openpims-client", cfg.LogPath)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	agentAdapter, err := adapter.NewHTTPAgentAdapter(cfg.AgentAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create agent adapter")
	}

	fetcher := client.NewFetcher(agentAdapter, http.DefaultTransport, log)

	ui := tui.New(agentAdapter, build, log)
	app := client.NewApp(agentAdapter, ui, fetcher, cfg.Args, log)

	if err = app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
