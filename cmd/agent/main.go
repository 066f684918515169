// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-openpims/internal/agent"
	"github.com/MKhiriev/go-openpims/internal/config"
	"github.com/MKhiriev/go-openpims/internal/logger"
	"github.com/MKhiriev/go-openpims/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetAgentConfig()
	if err != nil {
		logger.NewLogger("openpims-agent", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("openpims-agent", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Str("build", build.String()).Str("mode", cfg.Rules.Mode).Msg("starting agent")

	a, err := agent.New(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating agent")
	}
	defer a.Close()

	if err = a.Run(ctx); err != nil {
		log.Error().Err(err).Msg("agent stopped with error")
		return
	}
	log.Info().Msg("agent stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
