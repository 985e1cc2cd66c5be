// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-username-changer/internal/config"
	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/mock"
	"github.com/MKhiriev/go-username-changer/internal/service"
	"github.com/MKhiriev/go-username-changer/models"
)

const (
	validToken   = "valid-token"
	actingUserID = int64(7)
)

type testHandler struct {
	rename  *mock.MockRenameService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	handler *Handler
	router  http.Handler
}

func newTestHandler(t *testing.T, multiTenant bool) testHandler {
	t.Helper()

	ctrl := gomock.NewController(t)
	th := testHandler{
		rename:  mock.NewMockRenameService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	th.handler = NewHandler(&service.Services{
		RenameService:  th.rename,
		AuthService:    th.auth,
		AppInfoService: th.appInfo,
	}, config.App{MultiTenant: multiTenant}, logger.Nop())
	th.router = th.handler.Init()

	return th
}

// allowActingUser makes validToken resolve to actingUserID, who holds
// edit_users and network privilege.
func (th testHandler) allowActingUser() {
	th.allowTenantAdmin()
	th.rename.EXPECT().IsNetworkAdmin(gomock.Any(), actingUserID).Return(true, nil).AnyTimes()
}

// allowTenantAdmin makes validToken resolve to actingUserID, who holds
// edit_users only.
func (th testHandler) allowTenantAdmin() {
	th.auth.EXPECT().ParseToken(gomock.Any(), validToken).
		Return(models.Token{UserID: actingUserID}, nil).AnyTimes()
	th.rename.EXPECT().CanManageUsers(gomock.Any(), actingUserID).Return(true, nil).AnyTimes()
}

func (th testHandler) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
