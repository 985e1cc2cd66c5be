// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
)

// appInfoService reports the deployed version on /api/version.
type appInfoService struct {
	version string
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg.Version is
// blank.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("application version is not configured")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
