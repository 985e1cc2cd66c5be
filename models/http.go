// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RenameUserRequest is the JSON body of POST /api/users/rename.
type RenameUserRequest struct {
	// CurrentLogin is the login of the account to rename.
	CurrentLogin string `json:"current_login"`

	// NewLogin is the requested login.
	NewLogin string `json:"new_login"`
}

// RenameUserResponse is returned after a successful rename.
type RenameUserResponse struct {
	User          User   `json:"user"`
	PreviousLogin string `json:"previous_login"`

	// Self is true when the caller renamed their own account.
	Self bool `json:"self"`

	// Reauthenticate tells the client that its token no longer matches the
	// caller's login and a new one should be obtained.
	Reauthenticate bool `json:"reauthenticate"`

	// Message is a human-readable summary of the rename.
	Message string `json:"message"`

	// Warning is set when attribution references could not be moved.
	Warning string `json:"warning,omitempty"`
}

// UsersResponse lists the accounts an administrator may pick for renaming.
type UsersResponse struct {
	Users  []User `json:"users"`
	Length int    `json:"length"`
}

// RenameAllowedResponse tells the admin UI whether to show the rename action
// for a given account.
type RenameAllowedResponse struct {
	UserID  int64 `json:"user_id"`
	Allowed bool  `json:"allowed"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	// Error is a stable machine-readable failure kind.
	Error string `json:"error"`

	// Message is safe to show to the end user.
	Message string `json:"message"`
}
