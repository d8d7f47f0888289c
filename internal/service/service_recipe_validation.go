// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// RecipeServiceWrapper defines middleware composition for RecipeService.
// Implementations wrap an existing RecipeService to add behavior such as
// validation.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService // returns a decorated RecipeService applying additional behavior
}

// RecipeValidationService validates create requests before handing them to
// the wrapped RecipeService. Read and delete calls pass straight through.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Tag{}, err
	}
	return v.inner.CreateTag(ctx, userID, request)
}

func (v *RecipeValidationService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	return v.inner.ListTags(ctx, userID)
}

func (v *RecipeValidationService) CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Ingredient{}, err
	}
	return v.inner.CreateIngredient(ctx, userID, request)
}

func (v *RecipeValidationService) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	return v.inner.ListIngredients(ctx, userID)
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, userID int64, request models.RecipeRequest) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Recipe{}, err
	}
	return v.inner.CreateRecipe(ctx, userID, request)
}

func (v *RecipeValidationService) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return v.inner.ListRecipes(ctx, userID)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	return v.inner.GetRecipe(ctx, userID, recipeID)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	return v.inner.DeleteRecipe(ctx, userID, recipeID)
}

func (v *RecipeValidationService) UploadRecipeImage(ctx context.Context, userID, recipeID int64, filename string, content io.Reader) (models.Recipe, error) {
	if content == nil {
		return models.Recipe{}, validators.NewValidationError(validators.FieldImage, validators.MsgNoFile)
	}
	return v.inner.UploadRecipeImage(ctx, userID, recipeID, filename, content)
}

func (v *RecipeValidationService) Wrap(wrapped RecipeService) RecipeService {
	v.inner = wrapped
	return v
}
