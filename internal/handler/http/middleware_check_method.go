// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-username-changer/internal/logger"
	"github.com/MKhiriev/go-username-changer/internal/utils"
)

// checkHTTPMethod is the router's MethodNotAllowed handler. A known path
// requested with an unregistered method is answered with 404.
func (h *Handler) checkHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for route")
	h.notFound(w, r)
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, errorResponseFor(kindNotFound, notFoundMessage), http.StatusNotFound)
}
