// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a single account record of the user directory.
//
// Login is the renameable, unique identifier. Slug and DisplayName echo the
// login elsewhere in the record and are kept consistent by a rename.
type User struct {
	// UserID is the immutable numeric key of the account.
	UserID int64 `json:"user_id"`

	// Login is the unique human-readable account identifier.
	Login string `json:"login"`

	// Slug is the URL form of Login: lowercase, spaces replaced with hyphens.
	Slug string `json:"slug"`

	// DisplayName is shown in UI. It defaults to Login but may be edited
	// independently by profile flows.
	DisplayName string `json:"display_name"`

	// Email is only used to disambiguate entries in the selection list.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the account was provisioned.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Capability names stored in user_capabilities.
const (
	// CapabilityEditUsers allows the holder to edit other accounts, including
	// renaming their logins.
	CapabilityEditUsers = "edit_users"
)
