// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/utils"
)

// auth enforces bearer-token authentication.
//
// The token is validated by [service.AuthService.ParseToken]; on success the
// acting user's id is stored in the request context under
// [utils.UserIDCtxKey]. Every failure is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err))
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			h.writeError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCapability lets only holders of edit_users through. The rename
// service checks the capability again before writing.
func (h *Handler) requireCapability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		actingUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Err(ErrNoActingUser).Str("func", "*Handler.requireCapability").Send()
			h.writeError(w, r, ErrNoActingUser)
			return
		}

		allowed, err := h.services.RenameService.CanManageUsers(r.Context(), actingUserID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if !allowed {
			log.Warn().Int64("acting_user_id", actingUserID).Msg("user without edit_users capability")
			utils.WriteJSON(w, errorResponseFor(kindForbidden, forbiddenMessage), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireNetworkAdmin lets only network admins into the network-level routes
// and marks their requests as network-level.
func (h *Handler) requireNetworkAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		actingUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			log.Err(ErrNoActingUser).Str("func", "*Handler.requireNetworkAdmin").Send()
			h.writeError(w, r, ErrNoActingUser)
			return
		}

		privileged, err := h.services.RenameService.IsNetworkAdmin(r.Context(), actingUserID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		if !privileged {
			log.Warn().Int64("acting_user_id", actingUserID).Msg("network-level route used without network privilege")
			utils.WriteJSON(w, errorResponseFor(kindElevatedContext, elevatedMessage), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithNetworkLevel(r.Context())))
	})
}
