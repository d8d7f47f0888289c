// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// authenticateHeader is sent with every 401 so clients know which scheme
// to use.
const authenticateHeader = "Token"

// errorMapping ties a sentinel to its HTTP status and, for errors whose
// body is not a field map, the public "detail" message.
type errorMapping struct {
	err    error
	status int
	detail string
}

// errorMappings is matched in order and the first hit wins, so an error
// wrapping several sentinels always maps the same way. Errors without a
// detail fall back to the generic status text so internal error text never
// reaches the client.
var errorMappings = []errorMapping{
	{err: validators.ErrValidation, status: http.StatusBadRequest},
	{err: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{err: service.ErrInvalidCredentials, status: http.StatusBadRequest},
	{err: store.ErrEmailAlreadyExists, status: http.StatusBadRequest},
	{err: ErrMalformedJSON, status: http.StatusBadRequest, detail: "JSON parse error."},
	{err: ErrMalformedMultipart, status: http.StatusBadRequest, detail: "Multipart form parse error."},

	{err: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized, detail: "Authentication credentials were not provided."},
	{err: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized, detail: "Invalid token header. Token string should not contain spaces."},
	{err: ErrEmptyToken, status: http.StatusUnauthorized, detail: "Invalid token header. No credentials provided."},
	{err: ErrNoAuthenticatedUser, status: http.StatusUnauthorized, detail: "Authentication credentials were not provided."},
	{err: service.ErrInvalidToken, status: http.StatusUnauthorized, detail: "Invalid token."},
	{err: service.ErrUserInactive, status: http.StatusUnauthorized, detail: "User inactive or deleted."},

	{err: store.ErrRecipeNotFound, status: http.StatusNotFound, detail: "Not found."},
	{err: store.ErrUserNotFound, status: http.StatusNotFound, detail: "Not found."},
	{err: ErrInvalidResourceID, status: http.StatusNotFound, detail: "Not found."},

	{err: ErrRequestTooLarge, status: http.StatusRequestEntityTooLarge, detail: "Request entity too large."},
	{err: ErrUnsupportedMedia, status: http.StatusUnsupportedMediaType, detail: "Unsupported media type in request."},

	{err: service.ErrDatabaseUnavailable, status: http.StatusServiceUnavailable},
	{err: store.ErrDatabaseUnavailable, status: http.StatusServiceUnavailable},

	{err: service.ErrTokenCreationFailed, status: http.StatusInternalServerError},
	{err: store.ErrBuildingSQLQuery, status: http.StatusInternalServerError},
	{err: store.ErrExecutingQuery, status: http.StatusInternalServerError},
	{err: store.ErrBeginningTransaction, status: http.StatusInternalServerError},
	{err: store.ErrCommitingTransaction, status: http.StatusInternalServerError},
	{err: store.ErrExecutingStatement, status: http.StatusInternalServerError},
	{err: store.ErrScanningRow, status: http.StatusInternalServerError},
	{err: store.ErrScanningRows, status: http.StatusInternalServerError},
}

// lookupError returns the first mapping err matches.
func lookupError(err error) (errorMapping, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m, true
		}
	}
	return errorMapping{}, false
}

func statusFromError(err error) int {
	if m, ok := lookupError(err); ok {
		return m.status
	}
	return http.StatusInternalServerError
}

func detailFromError(err error, status int) string {
	if m, ok := lookupError(err); ok && m.detail != "" {
		return m.detail
	}
	if status == http.StatusInternalServerError {
		return "A server error occurred."
	}
	return http.StatusText(status)
}

// errorBody returns the JSON body for err: a field map for validation and
// credential failures, a {"detail": ...} object otherwise.
func errorBody(err error, status int) any {
	var validationErrs validators.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return validationErrs
	case errors.Is(err, service.ErrInvalidCredentials):
		return validators.NewValidationError(validators.NonFieldErrors, validators.MsgBadCredentials)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return validators.NewValidationError(validators.FieldEmail, validators.MsgEmailTaken)
	default:
		return models.DetailResponse{Detail: detailFromError(err, status)}
	}
}

// writeError logs err and writes the mapped status and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", authenticateHeader)
	}

	writeJSON(w, r, errorBody(err, status), status)
}
