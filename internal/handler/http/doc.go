// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the admin REST surface of the username changer.
//
// It exposes the user selection list, the rename action and its visibility
// check. Authentication, the edit_users gate, request tracing, access logging
// and response compression are handled here; the rename rules themselves
// live in the service layer, and this package only turns their results into
// JSON messages and status codes.
package http
