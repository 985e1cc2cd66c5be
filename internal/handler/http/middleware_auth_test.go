// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/internal/utils"
	"github.com/MKhiriev/go-username-changer/models"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(th testHandler)
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer stale",
			setup: func(th testHandler) {
				th.auth.EXPECT().ParseToken(gomock.Any(), "stale").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer " + validToken,
			setup: func(th testHandler) {
				th.auth.EXPECT().ParseToken(gomock.Any(), validToken).
					Return(models.Token{UserID: actingUserID}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := newTestHandler(t, false)
			if tt.setup != nil {
				tt.setup(th)
			}

			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			th.handler.auth(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, actingUserID, gotUserID)
				return
			}
			assert.Equal(t, kindUnauthorized, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestRequireCapability(t *testing.T) {
	newRequest := func(withUser bool) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		if withUser {
			req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, actingUserID))
		}
		return req
	}

	t.Run("holder passes", func(t *testing.T) {
		th := newTestHandler(t, false)
		th.rename.EXPECT().CanManageUsers(gomock.Any(), actingUserID).Return(true, nil)

		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

		rec := httptest.NewRecorder()
		th.handler.requireCapability(next).ServeHTTP(rec, newRequest(true))

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing capability is forbidden", func(t *testing.T) {
		th := newTestHandler(t, false)
		th.rename.EXPECT().CanManageUsers(gomock.Any(), actingUserID).Return(false, nil)

		rec := httptest.NewRecorder()
		th.handler.requireCapability(http.NotFoundHandler()).ServeHTTP(rec, newRequest(true))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeBody[models.ErrorResponse](t, rec)
		assert.Equal(t, kindForbidden, resp.Error)
		assert.Equal(t, forbiddenMessage, resp.Message)
	})

	t.Run("capability lookup failure", func(t *testing.T) {
		th := newTestHandler(t, false)
		th.rename.EXPECT().CanManageUsers(gomock.Any(), actingUserID).
			Return(false, &service.RenameError{Kind: service.ErrPersistence, Cause: errors.New("db down")})

		rec := httptest.NewRecorder()
		th.handler.requireCapability(http.NotFoundHandler()).ServeHTTP(rec, newRequest(true))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})

	t.Run("no acting user", func(t *testing.T) {
		th := newTestHandler(t, false)

		rec := httptest.NewRecorder()
		th.handler.requireCapability(http.NotFoundHandler()).ServeHTTP(rec, newRequest(false))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireNetworkAdmin(t *testing.T) {
	newRequest := func(withUser bool) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/network/users", nil)
		if withUser {
			req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, actingUserID))
		}
		return req
	}

	t.Run("network admin passes as network-level", func(t *testing.T) {
		th := newTestHandler(t, true)
		th.rename.EXPECT().IsNetworkAdmin(gomock.Any(), actingUserID).Return(true, nil)

		var networkLevel bool
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			networkLevel = utils.IsNetworkLevel(r.Context())
		})

		rec := httptest.NewRecorder()
		th.handler.requireNetworkAdmin(next).ServeHTTP(rec, newRequest(true))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, networkLevel)
	})

	t.Run("tenant admin is rejected", func(t *testing.T) {
		th := newTestHandler(t, true)
		th.rename.EXPECT().IsNetworkAdmin(gomock.Any(), actingUserID).Return(false, nil)

		rec := httptest.NewRecorder()
		th.handler.requireNetworkAdmin(http.NotFoundHandler()).ServeHTTP(rec, newRequest(true))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		resp := decodeBody[models.ErrorResponse](t, rec)
		assert.Equal(t, kindElevatedContext, resp.Error)
		assert.Equal(t, elevatedMessage, resp.Message)
	})

	t.Run("privilege lookup failure", func(t *testing.T) {
		th := newTestHandler(t, true)
		th.rename.EXPECT().IsNetworkAdmin(gomock.Any(), actingUserID).
			Return(false, &service.RenameError{Kind: service.ErrPersistence, Cause: errors.New("db down")})

		rec := httptest.NewRecorder()
		th.handler.requireNetworkAdmin(http.NotFoundHandler()).ServeHTTP(rec, newRequest(true))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})

	t.Run("no acting user", func(t *testing.T) {
		th := newTestHandler(t, true)

		rec := httptest.NewRecorder()
		th.handler.requireNetworkAdmin(http.NotFoundHandler()).ServeHTTP(rec, newRequest(false))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
