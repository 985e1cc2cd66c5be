// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing field", err: service.ErrMissingField, want: http.StatusBadRequest},
		{name: "no-op", err: service.ErrNoOpRename, want: http.StatusBadRequest},
		{name: "not found", err: service.ErrNotFound, want: http.StatusNotFound},
		{name: "conflict", err: service.ErrConflict, want: http.StatusConflict},
		{name: "elevated", err: service.ErrRequiresElevatedContext, want: http.StatusForbidden},
		{name: "forbidden", err: service.ErrForbidden, want: http.StatusForbidden},
		{name: "persistence", err: service.ErrPersistence, want: http.StatusInternalServerError},
		{name: "invalid token", err: service.ErrTokenIsExpiredOrInvalid, want: http.StatusUnauthorized},
		{name: "empty header", err: ErrEmptyAuthorizationHeader, want: http.StatusUnauthorized},
		{name: "wrapped header error", err: fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, errors.New("x")), want: http.StatusUnauthorized},
		{name: "bad user id", err: ErrInvalidUserID, want: http.StatusBadRequest},
		{name: "rename error", err: &service.RenameError{Kind: service.ErrConflict}, want: http.StatusConflict},
		{name: "unknown", err: errors.New("something else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorResponse_Unauthorized(t *testing.T) {
	assert.Equal(t,
		models.ErrorResponse{Error: kindUnauthorized, Message: unauthorizedMessage},
		errorResponse(service.ErrTokenIsExpiredOrInvalid))
}

func TestErrorResponse_BadRequestKeepsReason(t *testing.T) {
	resp := errorResponse(ErrInvalidUserID)
	assert.Equal(t, kindBadRequest, resp.Error)
	assert.Equal(t, ErrInvalidUserID.Error(), resp.Message)
}

func TestSuccessMessage(t *testing.T) {
	result := models.RenameResult{User: models.User{Login: "bob"}, PreviousLogin: "robert"}
	assert.Equal(t, "Username robert was changed to bob.", successMessage(result))

	result.Self = true
	assert.Equal(t, "Username robert was changed to bob. Please log in again.", successMessage(result))
}
