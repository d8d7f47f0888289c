// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// register creates an account from {email, password, name} and answers 201
// with the public profile.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, models.CreateUserParams{
		Email:    *req.Email,
		Password: req.Password,
		Name:     *req.Name,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	writeJSON(w, r, user.Profile(), http.StatusCreated)
}

// token exchanges {email, password} for the user's token key.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.validator.Validate(ctx, req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, *req.Email, *req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("token issued")
	writeJSON(w, r, models.TokenResponse{Token: token.Key}, http.StatusOK)
}
