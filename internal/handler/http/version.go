// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// health reports whether the server can reach its database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ping(r.Context()); err != nil {
		writeJSON(w, r, models.HealthResponse{Status: healthStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, r, models.HealthResponse{Status: healthStatusOK}, http.StatusOK)
}
