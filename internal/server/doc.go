// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the username changer.
//
// It owns the listener lifecycle: startup, cancellation through the caller's
// context and graceful shutdown bounded by a timeout.
package server
