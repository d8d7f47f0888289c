// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, service.Services{}).Init()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/user/create/"},
		{http.MethodPost, "/api/user/token/"},
		{http.MethodGet, "/api/user/me/"},
		{http.MethodPatch, "/api/user/me/"},
		{http.MethodGet, "/api/health/"},
		{http.MethodGet, "/api/version/"},
		{http.MethodGet, "/api/recipe/tags/"},
		{http.MethodPost, "/api/recipe/tags/"},
		{http.MethodGet, "/api/recipe/ingredients/"},
		{http.MethodPost, "/api/recipe/ingredients/"},
		{http.MethodGet, "/api/recipe/recipes/"},
		{http.MethodPost, "/api/recipe/recipes/"},
		{http.MethodGet, "/api/recipe/recipes/1/"},
		{http.MethodDelete, "/api/recipe/recipes/1/"},
		{http.MethodPost, "/api/recipe/recipes/1/upload-image/"},
	}

	for _, route := range routes {
		assert.True(t, router.Match(chi.NewRouteContext(), route.method, route.path), "%s %s", route.method, route.path)
	}
}

func TestInit_PublicRoutesSkipAuth(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	for _, path := range []string{"/api/health/", "/api/version/"} {
		rec := serve(h, jsonRequest(http.MethodGet, path, ""))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := serve(h, jsonRequest(http.MethodPost, "/api/user/create/", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "registration validates instead of demanding a token")
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	for _, path := range []string{"/", "/api/user/me", "/api/unknown/", "/api/recipe/recipes/1/extra/"} {
		rec := serve(h, authorized(jsonRequest(http.MethodGet, path, "")))

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"detail":"Not found."}`, rec.Body.String(), path)
	}
}

func TestInit_WrongMethod_Returns405BeforeAuth(t *testing.T) {
	tests := []struct {
		method, path, allow string
	}{
		{http.MethodGet, "/api/user/create/", "POST"},
		{http.MethodGet, "/api/user/token/", "POST"},
		{http.MethodPost, "/api/user/me/", "GET, PATCH"},
		{http.MethodPut, "/api/user/me/", "GET, PATCH"},
		{http.MethodPut, "/api/recipe/recipes/1/", "GET, DELETE"},
		{http.MethodGet, "/api/recipe/recipes/1/upload-image/", "POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			h := newTestHandler(t, service.Services{})

			rec := serve(h, jsonRequest(tt.method, tt.path, ""))

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
			assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h := newTestHandler(t, service.Services{})

	rec := serve(h, jsonRequest(http.MethodGet, "/api/user/me/", ""))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "trace ID is set on error responses too")

	req := jsonRequest(http.MethodGet, "/api/health/", "")
	req.Header.Set(traceIDHeader, "fixed-trace")
	rec = serve(h, req)
	assert.Equal(t, "fixed-trace", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h := newTestHandler(t, service.Services{AppInfoService: panickingAppInfo{}})

	rec := serve(h, jsonRequest(http.MethodGet, "/api/version/", ""))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_RequestTimeout(t *testing.T) {
	svcs := &service.Services{
		UserService:    &fakeUserService{},
		AuthService:    &fakeAuthService{},
		RecipeService:  &fakeRecipeService{},
		AppInfoService: &fakeAppInfoService{},
	}
	h := NewHandler(svcs, config.Server{RequestTimeout: time.Minute}, logger.Nop())

	rec := serve(h, jsonRequest(http.MethodGet, "/api/health/", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}
