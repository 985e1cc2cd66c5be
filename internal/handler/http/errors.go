// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrNoActingUser   = errors.New("no acting user in request context")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrInvalidPayload = errors.New("invalid JSON was passed")
)
