// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and the login policy of the
// username changer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - LoginSanitizer: the normalization applied to a desired login before any
//     rename rule is evaluated.
//
// The package has no dependency on transport or storage, so the same rules
// back the HTTP handlers and the rename service.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// LoginSanitizer normalizes a raw login string.
type LoginSanitizer func(raw string) string
