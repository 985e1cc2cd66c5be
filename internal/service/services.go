// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/store"
	"github.com/MKhiriev/go-username-changer/internal/validators"
)

type Services struct {
	RenameService  RenameService
	AuthService    AuthService
	AppInfoService AppInfoService
}

// NewServices builds the server-side services over storages. The attribution
// repository is only wired when cfg.App.AttributionEnabled is set.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	if storages == nil {
		return nil, ErrNilStorages
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	var attribution store.AttributionRepository
	if cfg.App.AttributionEnabled {
		attribution = storages.AttributionRepository
	}

	return &Services{
		RenameService: NewRenameService(
			storages.UserRepository,
			storages.PrivilegeRepository,
			attribution,
			StaticTenancy(cfg.App.MultiTenant),
			validators.NewLoginSanitizer(cfg.App.StrictLogins),
			logger,
		),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
