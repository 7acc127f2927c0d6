// Lectern - Multi-Tenant Education Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lectern

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/lectern/internal/announcements"
	"github.com/tomtom215/lectern/internal/api"
	"github.com/tomtom215/lectern/internal/catalog"
	"github.com/tomtom215/lectern/internal/config"
	"github.com/tomtom215/lectern/internal/live"
	"github.com/tomtom215/lectern/internal/logging"
	"github.com/tomtom215/lectern/internal/metrics"
	"github.com/tomtom215/lectern/internal/progress"
	"github.com/tomtom215/lectern/internal/supervisor"
	"github.com/tomtom215/lectern/internal/supervisor/services"
	ws "github.com/tomtom215/lectern/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Strs("cors_origins", cfg.ExactOrigins()).
		Strs("cors_suffixes", cfg.CORS.WildcardSuffixes).
		Msg("Configuration loaded")

	if cfg.RateLimit.Disabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	now := time.Now()
	var opts []api.HandlerOption
	if cfg.WebSocket.Enabled {
		wsHub := ws.NewHub()
		opts = append(opts, api.WithHub(wsHub))
		tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
		logging.Info().Msg("WebSocket hub added to supervisor tree")
	}

	handler := api.NewHandler(
		cfg,
		catalog.New(),
		progress.NewStore(),
		live.NewRegistry(),
		announcements.SeedFeed(now),
		opts...,
	)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
