// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-username-changer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the user directory: account lookup, the selection list
// and the transactional part of a rename.
type UserRepository interface {
	// FindUserByLogin returns ErrNoUserWasFound when no account has exactly
	// this login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every account ordered by login ascending.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ApplyRename writes the plan's user fields and, when requested, moves
	// the network privilege grant to the new login. Either every write is
	// committed or none is. A login collision yields ErrLoginAlreadyExists.
	ApplyRename(ctx context.Context, plan models.RenamePlan) (models.User, error)
}

// PrivilegeRepository answers authorization questions.
type PrivilegeRepository interface {
	// HasNetworkPrivilege reports whether login holds a network (super)
	// administrator grant. Grants are keyed by login string.
	HasNetworkPrivilege(ctx context.Context, login string) (bool, error)
	ListNetworkAdmins(ctx context.Context) ([]string, error)
	HasCapability(ctx context.Context, userID int64, capability string) (bool, error)
}

// AttributionRepository manages co-author attribution terms, which
// reference authors by login.
type AttributionRepository interface {
	FindAttributedItems(ctx context.Context, login string) ([]int64, error)

	// Reattribute attaches login's term to the item, creating the term if
	// needed. Existing terms on the item are left in place.
	Reattribute(ctx context.Context, itemID int64, login string) error

	// RemoveAttributionTerm deletes login's term together with its links.
	// Removing a term that does not exist is not an error.
	RemoveAttributionTerm(ctx context.Context, login string) error
}

// ErrorClassificator maps driver errors to driver-independent classes.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
