// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-username-changer/internal/adapter"
	"github.com/MKhiriev/go-username-changer/internal/client"
	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("username-changer-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	logBuildInfo(log)

	var serverAdapter adapter.ServerAdapter
	var authService service.AuthService
	if len(cfg.Args) > 0 && cfg.Args[0] == config.TokenCommand {
		authService = service.NewAuthService(cfg.App, log)
	} else {
		serverAdapter, err = adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create server adapter")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := client.NewApp(serverAdapter, authService, os.Stdout, log)
	if err = app.Run(ctx, cfg.Args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

func logBuildInfo(log *logger.Logger) {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().Stringer("build", info).Msg("build info")
}
