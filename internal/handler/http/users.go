// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/utils"
	"github.com/MKhiriev/go-username-changer/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.RenameService.ListRenameableUsers(ctx, utils.IsNetworkLevel(ctx))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users, Length: len(users)}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	user, err := h.services.RenameService.GetUser(ctx, userID, utils.IsNetworkLevel(ctx))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) renameAllowed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := userIDParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	actingUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoActingUser)
		return
	}

	allowed, err := h.services.RenameService.CanRename(ctx, actingUserID, userID, utils.IsNetworkLevel(ctx))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RenameAllowedResponse{UserID: userID, Allowed: allowed}, http.StatusOK)
}

func (h *Handler) renameUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	actingUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoActingUser)
		return
	}

	var body models.RenameUserRequest
	if err := utils.DecodeJSON(r, &body); err != nil {
		log.Err(err).Str("func", "*Handler.renameUser").Msg("invalid rename payload")
		h.writeError(w, r, ErrInvalidPayload)
		return
	}

	result, err := h.services.RenameService.RenameUser(ctx, models.RenameRequest{
		CurrentLogin:             body.CurrentLogin,
		DesiredLogin:             body.NewLogin,
		ActingUserID:             actingUserID,
		ActingUserIsNetworkAdmin: utils.IsNetworkLevel(ctx),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response := models.RenameUserResponse{
		User:           result.User,
		PreviousLogin:  result.PreviousLogin,
		Self:           result.Self,
		Reauthenticate: result.Self,
		Message:        successMessage(result),
	}
	if result.Partial() {
		log.Warn().Err(result.AttributionErr).Str("func", "*Handler.renameUser").Msg(kindPartialSuccess)
		response.Warning = partialMessage
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func userIDParam(r *http.Request) (int64, error) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrInvalidUserID
	}
	return userID, nil
}
