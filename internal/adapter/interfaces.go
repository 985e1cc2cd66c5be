// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-username-changer/models"
)

// ServerAdapter is the admin CLI's view of the username changer API.
//
// Every call except Version is authenticated with the configured bearer
// token. Non-2xx responses are returned as errors wrapping one of the
// package sentinels (ErrConflict, ErrNotFound, ...) together with the
// server's user-facing message.
type ServerAdapter interface {
	// Version returns the server's application version.
	Version(ctx context.Context) (string, error)

	// ListUsers returns the accounts the caller may pick for renaming.
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetUser returns one account by id.
	GetUser(ctx context.Context, userID int64) (models.User, error)

	// RenameAllowed reports whether the rename action applies to userID.
	RenameAllowed(ctx context.Context, userID int64) (bool, error)

	// RenameUser renames currentLogin to newLogin.
	RenameUser(ctx context.Context, currentLogin, newLogin string) (models.RenameUserResponse, error)
}
