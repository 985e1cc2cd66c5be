// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// username changer's HTTP handlers and admin CLI.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies or printed by the CLI. Format strings take their operands in the
// order documented next to them.
package app

const (
	// MsgMissingFields is returned when either login of a rename request is
	// empty after sanitization.
	MsgMissingFields = `Both "Current Username" and "New Username" fields are required!`

	// MsgUsernameNotFound is returned when the current login does not exist.
	// Operand: current login.
	MsgUsernameNotFound = `Username "%s" doesn't exist!`

	// MsgUserNotFound is returned when a user looked up by id does not exist.
	MsgUserNotFound = "User doesn't exist!"

	// MsgNoOpRename is returned when both logins are equal.
	// Operand: the login.
	MsgNoOpRename = `Current Username and New Username cannot both be "%s"!`

	// MsgLoginAlreadyExists is returned when the desired login is taken.
	// Operands: current login, desired login, desired login.
	MsgLoginAlreadyExists = `"%s" cannot be changed to "%s", "%s" already exists!`

	// MsgRequiresNetworkDashboard is returned when a network-privileged
	// account is renamed outside the network-level surface.
	MsgRequiresNetworkDashboard = "Super Admin usernames must be changed from the Network Dashboard!"

	// MsgNoPermission is returned when the acting user lacks edit_users.
	MsgNoPermission = "You do not have permission to change a username!"

	// MsgDatabaseError is returned for any storage failure. The cause is
	// logged, never sent.
	MsgDatabaseError = "A database error occurred. Please try again later."

	// MsgAttributionNotMoved warns that the rename was committed but
	// co-author attribution still points at the old login.
	MsgAttributionNotMoved = "Co-author attribution could not be fully moved to the new username."

	// MsgAuthenticationRequired is returned for missing or invalid tokens.
	MsgAuthenticationRequired = "Authentication is required."

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not found."

	// MsgRenameSucceeded confirms a rename.
	// Operands: previous login, new login.
	MsgRenameSucceeded = "Username %s was changed to %s."

	// MsgLogInAgain is appended to MsgRenameSucceeded when the acting user
	// renamed their own account.
	MsgLogInAgain = " Please log in again."
)
