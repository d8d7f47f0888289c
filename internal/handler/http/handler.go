// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	services *service.Services

	// validator checks registration and token requests, which never reach
	// the service layer in their raw form.
	validator validators.Validator

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewUserValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}

// writeJSON writes data with the given status and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// maxJSONBodySize caps JSON request bodies.
const maxJSONBodySize = 1 << 20

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched so that required fields are reported by validation. Bodies over
// maxJSONBodySize yield [ErrRequestTooLarge].
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body != nil && r.Body != http.NoBody {
		r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)
	}

	err := utils.DecodeJSON(r, dst)

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, utils.ErrEmptyBody):
		return nil
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	case errors.Is(err, models.ErrInvalidPrice),
		errors.Is(err, models.ErrPriceTooManyDecimals),
		errors.Is(err, models.ErrPriceTooLarge):
		return validators.NewValidationError(validators.FieldPrice, priceMessage(err))
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validators.NewValidationError(typeErr.Field, msgIncorrectType)
	}
	return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
}

const msgIncorrectType = "Incorrect type."

func priceMessage(err error) string {
	msg := models.ErrInvalidPrice.Error()
	for _, known := range []error{models.ErrPriceTooManyDecimals, models.ErrPriceTooLarge} {
		if errors.Is(err, known) {
			msg = known.Error()
		}
	}
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// currentUser returns the user attached by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return models.User{}, ErrNoAuthenticatedUser
	}
	return user, nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidResourceID
	}
	return id, nil
}
