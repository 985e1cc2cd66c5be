// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-username-changer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RenameService validates and applies login renames.
type RenameService interface {
	// RenameUser sanitizes the desired login, runs the rename rules and, when
	// they pass, writes the new login, slug and display name and moves the
	// network privilege grant in one transaction. Attribution is moved
	// afterwards and its failure is reported in RenameResult.AttributionErr.
	//
	// Rejections and failures are returned as *RenameError.
	RenameUser(ctx context.Context, req models.RenameRequest) (models.RenameResult, error)

	// ListRenameableUsers returns the accounts an administrator may pick,
	// ordered by login.
	ListRenameableUsers(ctx context.Context, networkLevel bool) ([]models.User, error)

	// GetUser returns one renameable account, used to prefill the current
	// login.
	GetUser(ctx context.Context, userID int64, networkLevel bool) (models.User, error)

	// CanManageUsers reports whether actingUserID holds the edit_users
	// capability required to use the rename surface at all.
	CanManageUsers(ctx context.Context, actingUserID int64) (bool, error)

	// IsNetworkAdmin reports whether actingUserID holds network privilege,
	// which the network-level surface requires.
	IsNetworkAdmin(ctx context.Context, actingUserID int64) (bool, error)

	// CanRename reports whether the rename action should be offered to
	// actingUserID for targetUserID.
	CanRename(ctx context.Context, actingUserID, targetUserID int64, networkLevel bool) (bool, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64, ttl time.Duration) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TenancyPolicy tells whether the deployment hosts several tenants, which
// enables the network privilege rules.
type TenancyPolicy interface {
	IsMultiTenant() bool
}

// StaticTenancy is a TenancyPolicy fixed at startup.
type StaticTenancy bool

func (t StaticTenancy) IsMultiTenant() bool {
	return bool(t)
}
