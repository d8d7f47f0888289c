// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectNopLogger attaches a silent request-scoped logger.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "token scheme", header: "Token abc123", wantToken: "abc123"},
		{name: "bearer scheme", header: "Bearer abc123", wantToken: "abc123"},
		{name: "scheme is case-insensitive", header: "token abc123", wantToken: "abc123"},
		{name: "extra surrounding spaces", header: "  Token   abc123 ", wantToken: "abc123"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "unknown scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrEmptyAuthorizationHeader},
		{name: "scheme without key", header: "Token", wantErr: ErrEmptyToken},
		{name: "key with spaces", header: "Token abc 123", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		authHeader   string
		resolveErr   error
		resolveUser  models.User
		wantStatus   int
		wantDetail   string
		wantResolved bool
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Authentication credentials were not provided.",
		},
		{
			name:       "scheme without key",
			authHeader: "Token",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid token header. No credentials provided.",
		},
		{
			name:       "key with spaces",
			authHeader: "Token a b",
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Invalid token header. Token string should not contain spaces.",
		},
		{
			name:         "unknown key",
			authHeader:   "Token unknown",
			resolveErr:   service.ErrInvalidToken,
			wantStatus:   http.StatusUnauthorized,
			wantDetail:   "Invalid token.",
			wantResolved: true,
		},
		{
			name:         "inactive user",
			authHeader:   "Bearer inactive",
			resolveErr:   service.ErrUserInactive,
			wantStatus:   http.StatusUnauthorized,
			wantDetail:   "User inactive or deleted.",
			wantResolved: true,
		},
		{
			name:         "lookup failure",
			authHeader:   "Token broken",
			resolveErr:   fmt.Errorf("token lookup failed: %w", errUnexpectedCall),
			wantStatus:   http.StatusInternalServerError,
			wantDetail:   "A server error occurred.",
			wantResolved: true,
		},
		{
			name:         "valid key",
			authHeader:   "Token good",
			resolveUser:  testUser,
			wantStatus:   http.StatusOK,
			wantResolved: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := false
			auth := &fakeAuthService{
				resolveTokenFn: func(_ context.Context, _ string) (models.User, error) {
					resolved = true
					return tt.resolveUser, tt.resolveErr
				},
			}
			h := newTestHandler(t, service.Services{AuthService: auth})

			var gotUser models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, _ = utils.GetUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantResolved, resolved)
			if tt.wantDetail != "" {
				assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tt.wantDetail), rr.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Token", rr.Header().Get("WWW-Authenticate"))
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testUser, gotUser)
			}
		})
	}
}

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newTestHandler(t, service.Services{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	req.Header.Set("Authorization", "Token "+testTokenKey)
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
	_, ok := utils.GetUserFromContext(req.Context())
	assert.False(t, ok)
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newTestHandler(t, service.Services{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
			req.Header.Set("Authorization", "Bearer "+testTokenKey)
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		assert.Equal(t, http.StatusOK, <-done)
	}
}
