// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, user.Profile(), http.StatusOK)
}

// updateProfile applies a partial update of name and password. Any other
// field in the body, email included, is ignored.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateUser(r.Context(), user.UserID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, updated.Profile(), http.StatusOK)
}
