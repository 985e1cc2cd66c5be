// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/models"
)

// newSQLiteStorages opens a migrated in-memory directory. The test is skipped
// when the sqlite3 driver is unavailable (CGO disabled).
func newSQLiteStorages(t *testing.T) (*Storages, *DB) {
	t.Helper()

	ctx := context.Background()
	db, err := NewDB(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))

	storages := NewStorages(db, logger.Nop())
	t.Cleanup(func() { storages.Close() })

	return storages, db
}

func seedUser(t *testing.T, db *DB, login, displayName string) int64 {
	t.Helper()

	res, err := db.ExecContext(context.Background(),
		"INSERT INTO users (login, slug, display_name, email) VALUES (?, ?, ?, ?)",
		login, login, displayName, login+"@example.com")
	require.NoError(t, err)

	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

func TestSQLite_ApplyRename(t *testing.T) {
	storages, db := newSQLiteStorages(t)
	ctx := context.Background()

	id := seedUser(t, db, "root", "root")
	_, err := db.ExecContext(ctx, "INSERT INTO network_admins (login) VALUES (?)", "root")
	require.NoError(t, err)

	updated, err := storages.UserRepository.ApplyRename(ctx, models.RenamePlan{
		UserID:       id,
		CurrentLogin: "root",
		Fields: models.UserFields{
			Login:       ptr("Chief Admin"),
			Slug:        ptr("chief-admin"),
			DisplayName: ptr("Chief Admin"),
		},
		ReaffirmNetworkPrivilege: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Chief Admin", updated.Login)
	assert.Equal(t, "chief-admin", updated.Slug)
	assert.False(t, updated.CreatedAt.IsZero())

	admins, err := storages.PrivilegeRepository.ListNetworkAdmins(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chief Admin"}, admins)

	_, err = storages.UserRepository.FindUserByLogin(ctx, "root")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_ApplyRename_Conflict(t *testing.T) {
	storages, db := newSQLiteStorages(t)
	ctx := context.Background()

	id := seedUser(t, db, "alice", "Alice")
	seedUser(t, db, "bob", "Bob")

	_, err := storages.UserRepository.ApplyRename(ctx, models.RenamePlan{
		UserID:       id,
		CurrentLogin: "alice",
		Fields:       models.UserFields{Login: ptr("bob"), Slug: ptr("bob")},
	})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	user, err := storages.UserRepository.FindUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
}

func TestSQLite_Reattribute(t *testing.T) {
	storages, db := newSQLiteStorages(t)
	ctx := context.Background()

	res, err := db.ExecContext(ctx, "INSERT INTO attribution_terms (login) VALUES (?)", "alice")
	require.NoError(t, err)
	termID, err := res.LastInsertId()
	require.NoError(t, err)
	for _, item := range []int64{7, 3} {
		_, err = db.ExecContext(ctx, "INSERT INTO attribution_items (item_id, term_id) VALUES (?, ?)", item, termID)
		require.NoError(t, err)
	}

	items, err := storages.AttributionRepository.FindAttributedItems(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 7}, items)

	for _, item := range items {
		require.NoError(t, storages.AttributionRepository.Reattribute(ctx, item, "alice2"))
	}
	// idempotent
	require.NoError(t, storages.AttributionRepository.Reattribute(ctx, 3, "alice2"))
	require.NoError(t, storages.AttributionRepository.RemoveAttributionTerm(ctx, "alice"))

	moved, err := storages.AttributionRepository.FindAttributedItems(ctx, "alice2")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, moved)

	left, err := storages.AttributionRepository.FindAttributedItems(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestSQLite_HasCapability(t *testing.T) {
	storages, db := newSQLiteStorages(t)
	ctx := context.Background()

	id := seedUser(t, db, "editor", "editor")
	_, err := db.ExecContext(ctx, "INSERT INTO user_capabilities (user_id, capability) VALUES (?, ?)", id, models.CapabilityEditUsers)
	require.NoError(t, err)

	ok, err := storages.PrivilegeRepository.HasCapability(ctx, id, models.CapabilityEditUsers)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = storages.PrivilegeRepository.HasNetworkPrivilege(ctx, "editor")
	require.NoError(t, err)
	assert.False(t, ok)
}
