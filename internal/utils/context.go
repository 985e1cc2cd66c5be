// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the acting user identifier in the
// context. Used together with GetUserIDFromContext for type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// NetworkLevelCtxKey marks requests that arrived through the network-level
// surface of a multi-tenant deployment.
var NetworkLevelCtxKey = contextKey("networkLevel")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithNetworkLevel returns a copy of ctx flagged as network-level.
func WithNetworkLevel(ctx context.Context) context.Context {
	return context.WithValue(ctx, NetworkLevelCtxKey, true)
}

// IsNetworkLevel reports whether ctx was flagged by WithNetworkLevel.
func IsNetworkLevel(ctx context.Context) bool {
	networkLevel, _ := ctx.Value(NetworkLevelCtxKey).(bool)
	return networkLevel
}
