// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// multipartMemory is the part of an upload kept in memory before spilling
// to a temporary file.
const multipartMemory = 1 << 20

func (h *Handler) createTag(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NameRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.services.RecipeService.CreateTag(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, tag, http.StatusCreated)
}

func (h *Handler) listTags(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	tags, err := h.services.RecipeService.ListTags(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, tags, http.StatusOK)
}

func (h *Handler) createIngredient(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.NameRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ingredient, err := h.services.RecipeService.CreateIngredient(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, ingredient, http.StatusCreated)
}

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ingredients, err := h.services.RecipeService.ListIngredients(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, ingredients, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.RecipeRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(r.Context(), user.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("recipe_id", recipe.RecipeID).Msg("recipe created")
	writeJSON(w, r, recipe, http.StatusCreated)
}

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipes, err := h.services.RecipeService.ListRecipes(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), user.UserID, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), user.UserID, recipeID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadRecipeImage stores the multipart "image" field as the recipe photo.
func (h *Handler) uploadRecipeImage(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	recipeID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	}

	if err = r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, uploadError(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var (
		filename string
		content  io.Reader
	)
	file, header, err := r.FormFile(validators.FieldImage)
	switch {
	case err == nil:
		defer file.Close()
		filename, content = header.Filename, file
	case errors.Is(err, http.ErrMissingFile):
		// content stays nil, reported as a field error by the service
	default:
		writeError(w, r, uploadError(err))
		return
	}

	recipe, err := h.services.RecipeService.UploadRecipeImage(r.Context(), user.UserID, recipeID, filename, content)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := models.RecipeImageResponse{RecipeID: recipe.RecipeID}
	if recipe.Image != nil {
		response.Image = *recipe.Image
	}
	writeJSON(w, r, response, http.StatusOK)
}

// uploadError translates multipart parsing failures.
func uploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr), errors.Is(err, multipart.ErrMessageTooLarge):
		return ErrRequestTooLarge
	case errors.Is(err, http.ErrNotMultipart):
		return ErrUnsupportedMedia
	default:
		return fmt.Errorf("%w: %w", ErrMalformedMultipart, err)
	}
}
