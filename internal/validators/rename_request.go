// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-username-changer/models"
)

// Field name constants used to scope RenameRequestValidator.
const (
	// FieldCurrentLogin targets the login of the account being renamed.
	FieldCurrentLogin = "current_login"

	// FieldDesiredLogin targets the requested new login.
	FieldDesiredLogin = "new_login"
)

// RenameRequestValidator checks the presence rules of rename requests.
// Sanitization happens before it runs, so a desired login made entirely of
// stripped characters is reported as missing.
type RenameRequestValidator struct{}

// NewRenameRequestValidator constructs a RenameRequestValidator.
func NewRenameRequestValidator() Validator {
	return &RenameRequestValidator{}
}

// Validate accepts models.RenameRequest and *models.RenameRequest.
//
// When no fields are given, FieldCurrentLogin and FieldDesiredLogin are
// checked in that order and the first failure is returned.
func (v *RenameRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RenameRequest:
		return v.validateRenameRequest(ctx, value, fields...)
	case *models.RenameRequest:
		return v.validateRenameRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RenameRequestValidator) validateRenameRequest(_ context.Context, req models.RenameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentLogin, FieldDesiredLogin}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentLogin:
			if req.CurrentLogin == "" {
				return ErrEmptyCurrentLogin
			}
		case FieldDesiredLogin:
			if req.DesiredLogin == "" {
				return ErrEmptyDesiredLogin
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
