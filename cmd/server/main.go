// Letterboxd Wrapped - Diary Analytics and Year in Review
// Copyright 2026 Yash H. (halfbloodedyash)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/halfbloodedyash/letterboxd-wrapped

// Command server runs the Letterboxd Wrapped HTTP API.
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

	"github.com/halfbloodedyash/letterboxd-wrapped/internal/analytics"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/api"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/config"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/enrich"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/logging"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/persona"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/supervisor"
	"github.com/halfbloodedyash/letterboxd-wrapped/internal/supervisor/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Bool("enrich_enabled", cfg.Enrich.Enabled).
		Bool("persona_enabled", cfg.Persona.Enabled).
		Msg("Starting Letterboxd Wrapped")

	analyzer := analytics.New(cfg.Analytics)

	var enricher *enrich.Service
	if cfg.Enrich.Enabled {
		enricher = enrich.NewService(cfg.Enrich)
		defer enricher.Close()
		logging.Info().Str("base_url", cfg.Enrich.BaseURL).Msg("TMDB enrichment enabled")
	} else {
		logging.Info().Msg("TMDB enrichment disabled")
	}

	var personaGen *persona.Generator
	if cfg.Persona.Enabled {
		personaGen = persona.NewGenerator(cfg.Persona)
		logging.Info().Str("model", cfg.Persona.Model).Msg("AI persona generation enabled")
	} else {
		logging.Info().Msg("AI persona generation disabled")
	}

	handler := api.NewHandler(cfg, analyzer, enricher, personaGen, version)
	router := api.NewRouter(&cfg.Server, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
