// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-username-changer/internal/logger"
)

// getServerVersion answers with the deployed version as plain text. It is
// the only route that needs no token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write version")
	}
}
