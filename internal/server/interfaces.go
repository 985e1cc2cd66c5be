// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport server.
//
// Run blocks until ctx is cancelled or the listener fails, then shuts the
// server down gracefully.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
