// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RenameRequest carries one rename attempt from the admin surface to the
// rename service. It lives only for the duration of a single call.
type RenameRequest struct {
	// CurrentLogin is the login of the account being renamed.
	CurrentLogin string

	// DesiredLogin is the new login as typed by the administrator. It is
	// sanitized by the service before any rule is evaluated.
	DesiredLogin string

	// ActingUserID is the account performing the rename.
	ActingUserID int64

	// ActingUserIsNetworkAdmin reports that the request arrived through the
	// network-level surface of a multi-tenant deployment.
	ActingUserIsNetworkAdmin bool
}

// RenameResult is returned by a successful rename.
type RenameResult struct {
	// User is the renamed record as it looks after the update.
	User User

	// PreviousLogin is the login the account had before the rename.
	PreviousLogin string

	// Self reports that the acting user renamed their own account. The
	// caller's session identity is stale in that case and re-authentication
	// should be prompted.
	Self bool

	// AttributionErr is set when the core rename was committed but moving
	// attribution references to the new login failed.
	AttributionErr error
}

// Partial reports whether the rename succeeded only partially.
func (r RenameResult) Partial() bool {
	return r.AttributionErr != nil
}

// UserFields is a partial update of a user record.
// Only non-nil fields are written.
type UserFields struct {
	Login       *string
	Slug        *string
	DisplayName *string
}

// IsEmpty reports whether no field is set.
func (f UserFields) IsEmpty() bool {
	return f.Login == nil && f.Slug == nil && f.DisplayName == nil
}

// RenamePlan is the ordered set of writes a rename issues to the directory.
// Stores apply it atomically when they support transactions.
type RenamePlan struct {
	// UserID identifies the record to update.
	UserID int64

	// CurrentLogin is the login before the update.
	CurrentLogin string

	// Fields holds the login, slug and (optionally) display name updates.
	Fields UserFields

	// ReaffirmNetworkPrivilege re-grants network privilege under the new
	// login. Grants are keyed by login string and go stale after a rename.
	ReaffirmNetworkPrivilege bool
}
