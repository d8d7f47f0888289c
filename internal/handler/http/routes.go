// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level of JSON responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGzipRequest)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/create/", h.register)
		r.Post("/api/user/token/", h.token)
		r.Get("/api/health/", h.health)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/user/me/", h.getProfile)
		r.Patch("/api/user/me/", h.updateProfile)

		r.Get("/api/recipe/tags/", h.listTags)
		r.Post("/api/recipe/tags/", h.createTag)
		r.Get("/api/recipe/ingredients/", h.listIngredients)
		r.Post("/api/recipe/ingredients/", h.createIngredient)

		r.Get("/api/recipe/recipes/", h.listRecipes)
		r.Post("/api/recipe/recipes/", h.createRecipe)
		r.Get("/api/recipe/recipes/{id}/", h.getRecipe)
		r.Delete("/api/recipe/recipes/{id}/", h.deleteRecipe)
		r.Post("/api/recipe/recipes/{id}/upload-image/", h.uploadRecipeImage)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
