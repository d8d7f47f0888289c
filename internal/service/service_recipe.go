// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// sniffLen is the number of leading bytes inspected to detect the image
// content type.
const sniffLen = 512

type recipeService struct {
	tagRepository        store.TagRepository
	ingredientRepository store.IngredientRepository
	recipeRepository     store.RecipeRepository
	imageStorage         store.ImageStorage

	logger *logger.Logger
}

// NewRecipeService constructs a RecipeService. Input is expected to be
// validated already, see [NewRecipeValidationService].
func NewRecipeService(repositories *store.Repositories, imageStorage store.ImageStorage, logger *logger.Logger) RecipeService {
	return &recipeService{
		tagRepository:        repositories.TagRepository,
		ingredientRepository: repositories.IngredientRepository,
		recipeRepository:     repositories.RecipeRepository,
		imageStorage:         imageStorage,
		logger:               logger,
	}
}

func (s *recipeService) CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error) {
	tag, err := s.tagRepository.CreateTag(ctx, models.Tag{UserID: userID, Name: trimmed(request.Name)})
	if err != nil {
		return models.Tag{}, fmt.Errorf("tag creation ended with error: %w", err)
	}
	return tag, nil
}

func (s *recipeService) ListTags(ctx context.Context, userID int64) ([]models.Tag, error) {
	tags, err := s.tagRepository.ListTags(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tag listing ended with error: %w", err)
	}
	return tags, nil
}

func (s *recipeService) CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error) {
	ingredient, err := s.ingredientRepository.CreateIngredient(ctx, models.Ingredient{UserID: userID, Name: trimmed(request.Name)})
	if err != nil {
		return models.Ingredient{}, fmt.Errorf("ingredient creation ended with error: %w", err)
	}
	return ingredient, nil
}

func (s *recipeService) ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error) {
	ingredients, err := s.ingredientRepository.ListIngredients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ingredient listing ended with error: %w", err)
	}
	return ingredients, nil
}

// CreateRecipe stores a recipe linked to the caller's tags and ingredients.
// Links to objects the caller does not own are reported as field errors.
func (s *recipeService) CreateRecipe(ctx context.Context, userID int64, request models.RecipeRequest) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe := models.Recipe{
		UserID:      userID,
		Title:       trimmed(request.Title),
		Description: request.Description,
		Link:        strings.TrimSpace(request.Link),
	}
	if request.TimeMinutes != nil {
		recipe.TimeMinutes = *request.TimeMinutes
	}
	if request.Price != nil {
		recipe.Price = *request.Price
	}
	for _, id := range request.Tags {
		recipe.Tags = append(recipe.Tags, models.Tag{TagID: id})
	}
	for _, id := range request.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.Ingredient{IngredientID: id})
	}

	created, err := s.recipeRepository.CreateRecipe(ctx, recipe)
	switch {
	case errors.Is(err, store.ErrUnknownTag):
		return models.Recipe{}, validators.NewValidationError(validators.FieldTags, validators.MsgInvalidID)
	case errors.Is(err, store.ErrUnknownIngredient):
		return models.Recipe{}, validators.NewValidationError(validators.FieldIngredients, validators.MsgInvalidID)
	case err != nil:
		log.Err(err).Int64("user_id", userID).Msg("recipe creation ended with error")
		return models.Recipe{}, fmt.Errorf("recipe creation ended with error: %w", err)
	}

	return created, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipe listing ended with error: %w", err)
	}
	return recipes, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe search ended with error: %w", err)
	}
	return recipe, nil
}

// DeleteRecipe removes the recipe and then its image, if any. A failure to
// remove the image file is logged and otherwise ignored.
func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return fmt.Errorf("recipe search ended with error: %w", err)
	}

	if err = s.recipeRepository.DeleteRecipe(ctx, userID, recipeID); err != nil {
		return fmt.Errorf("recipe deletion ended with error: %w", err)
	}

	if recipe.Image != nil {
		if err = s.imageStorage.Delete(ctx, *recipe.Image); err != nil {
			log.Warn().Err(err).Str("image", *recipe.Image).Msg("orphaned recipe image was not removed")
		}
	}
	return nil
}

// UploadRecipeImage stores content as the recipe's image under a generated
// key and removes the image it replaces.
//
// The client-supplied filename only contributes its extension. Content that
// does not sniff as image/* is rejected with a field error.
func (s *recipeService) UploadRecipeImage(ctx context.Context, userID, recipeID int64, filename string, content io.Reader) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipeRepository.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe search ended with error: %w", err)
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return models.Recipe{}, fmt.Errorf("error reading image: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if n == 0 || !strings.HasPrefix(contentType, "image/") {
		return models.Recipe{}, validators.NewValidationError(validators.FieldImage, validators.MsgInvalidImage)
	}

	key := utils.RecipeImagePath(filename)
	if err = s.imageStorage.Save(ctx, key, io.MultiReader(bytes.NewReader(head), content), contentType); err != nil {
		return models.Recipe{}, fmt.Errorf("error saving image: %w", err)
	}

	previous, err := s.recipeRepository.SetRecipeImage(ctx, userID, recipeID, key)
	if err != nil {
		if delErr := s.imageStorage.Delete(ctx, key); delErr != nil {
			log.Warn().Err(delErr).Str("image", key).Msg("uploaded image was not rolled back")
		}
		return models.Recipe{}, fmt.Errorf("error setting recipe image: %w", err)
	}

	if previous != nil && *previous != key {
		if err = s.imageStorage.Delete(ctx, *previous); err != nil {
			log.Warn().Err(err).Str("image", *previous).Msg("replaced recipe image was not removed")
		}
	}

	recipe.Image = &key
	log.Info().Int64("recipe_id", recipeID).Str("image", key).Msg("recipe image uploaded")
	return recipe, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
