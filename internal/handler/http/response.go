// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/utils"
	"github.com/MKhiriev/go-username-changer/models"
)

// writeError answers with the status and ErrorResponse mapped from err.
// Persistence causes are logged, never sent.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeError").Msg("request failed")
	}

	if _, werr := utils.WriteJSON(w, errorResponse(err), status); werr != nil {
		logger.FromRequest(r).Err(werr).Str("func", "*Handler.writeError").Msg("failed to write error response")
	}
}

func errorResponseFor(kind, message string) models.ErrorResponse {
	return models.ErrorResponse{Error: kind, Message: message}
}
