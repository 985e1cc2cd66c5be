// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/internal/utils"
)

type Handler struct {
	services *service.Services

	// multiTenant mounts the network-level routes.
	multiTenant bool

	traceIDs *utils.TraceIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("multi_tenant", cfg.MultiTenant).Msg("http handler created")
	return &Handler{
		services:    services,
		multiTenant: cfg.MultiTenant,
		traceIDs:    utils.NewTraceIDGenerator(),
		logger:      logger,
	}
}
