// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/store"
)

func TestNewServices(t *testing.T) {
	dir := newFakeDirectory()
	storages := &store.Storages{
		UserRepository:        dir,
		PrivilegeRepository:   dir,
		AttributionRepository: dir,
	}

	t.Run("nil storages", func(t *testing.T) {
		_, err := NewServices(nil, config.StructuredConfig{}, logger.Nop())
		assert.ErrorIs(t, err, ErrNilStorages)
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := NewServices(storages, config.StructuredConfig{}, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})

	t.Run("attribution wired only when enabled", func(t *testing.T) {
		cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", MultiTenant: true}}

		services, err := NewServices(storages, cfg, logger.Nop())
		require.NoError(t, err)
		rs := services.RenameService.(*renameService)
		assert.Nil(t, rs.attribution)
		assert.True(t, rs.tenancy.IsMultiTenant())

		cfg.App.AttributionEnabled = true
		services, err = NewServices(storages, cfg, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, services.RenameService.(*renameService).attribution)
		assert.NotNil(t, services.AuthService)
		assert.NotNil(t, services.AppInfoService)
	})
}
