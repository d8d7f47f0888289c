// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-chi/chi/v5"
)

// knownMethods are probed, in this order, to build the "Allow" header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// It answers 405 with a JSON {"detail": ...} body and an "Allow" header
// listing every method the matched route does serve. chi invokes it before
// any route-level middleware runs, so the method check happens ahead of
// authentication.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			writeJSON(w, r, models.DetailResponse{Detail: "Not found."}, http.StatusNotFound)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		writeJSON(w, r, models.DetailResponse{
			Detail: fmt.Sprintf("Method %q not allowed.", r.Method),
		}, http.StatusMethodNotAllowed)
	}
}

// allowedMethods lists the methods the router serves for path.
func allowedMethods(router *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range knownMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// notFound answers unknown paths with a JSON body.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.DetailResponse{Detail: "Not found."}, http.StatusNotFound)
}
