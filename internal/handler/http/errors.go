// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header, or one with a scheme other than Token or Bearer.
	ErrEmptyAuthorizationHeader = errors.New("authentication credentials were not provided")

	// ErrInvalidAuthorizationHeader is returned when the credentials part of
	// the header contains spaces.
	ErrInvalidAuthorizationHeader = errors.New("invalid token header, token string should not contain spaces")

	// ErrEmptyToken is returned when the header names a known scheme but
	// carries no token value.
	ErrEmptyToken = errors.New("invalid token header, no credentials provided")
)

// Request decoding errors.
var (
	ErrMalformedJSON       = errors.New("JSON parse error")
	ErrMalformedMultipart  = errors.New("multipart form parse error")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrInvalidResourceID   = errors.New("invalid resource identifier")
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)
