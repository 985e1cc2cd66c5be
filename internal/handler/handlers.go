// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/handler/http"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when a listen address is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
