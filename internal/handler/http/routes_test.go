// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-username-changer/models"
)

func TestNewHandler(t *testing.T) {
	th := newTestHandler(t, true)

	assert.NotNil(t, th.handler.services)
	assert.True(t, th.handler.multiTenant)
	assert.NotNil(t, th.handler.traceIDs)
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	th := newTestHandler(t, false)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := th.do(http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestRoutes_UserRoutesRequireAuth(t *testing.T) {
	th := newTestHandler(t, false)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodGet, "/api/users/1/rename-allowed"},
		{http.MethodPost, "/api/users/rename"},
	} {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := th.do(route.method, route.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, kindUnauthorized, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestRoutes_NetworkRoutesOnlyWhenMultiTenant(t *testing.T) {
	single := newTestHandler(t, false)
	single.allowActingUser()

	rec := single.do(http.MethodGet, "/api/network/users", "", validToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	multi := newTestHandler(t, true)
	multi.allowActingUser()
	multi.rename.EXPECT().ListRenameableUsers(gomock.Any(), true).Return(nil, nil)

	rec = multi.do(http.MethodGet, "/api/network/users", "", validToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_UnregisteredMethodIsNotFound(t *testing.T) {
	th := newTestHandler(t, false)
	th.allowActingUser()

	tests := []struct{ method, path string }{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodGet, "/api/users/rename/extra"},
		{http.MethodGet, "/api/nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := th.do(tt.method, tt.path, "", validToken)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, kindNotFound, decodeBody[models.ErrorResponse](t, rec).Error)
		})
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	th := newTestHandler(t, false)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	rec := th.do(http.MethodGet, "/api/version", "", "")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}
