// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser applies the non-nil fields of patch. An empty patch just
	// returns the current row.
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
}

// TokenRepository persists auth tokens, at most one per user.
type TokenRepository interface {
	// GetOrCreateToken stores key for userID unless the user already owns a
	// token, and returns the token that ends up stored.
	GetOrCreateToken(ctx context.Context, userID int64, key string) (models.Token, error)
	// FindUserByTokenKey returns the owner of the token with key.
	FindUserByTokenKey(ctx context.Context, key string) (models.User, error)
}

// TagRepository persists user-owned tags.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)
}

// IngredientRepository persists user-owned ingredients.
type IngredientRepository interface {
	CreateIngredient(ctx context.Context, ingredient models.Ingredient) (models.Ingredient, error)
	ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error)
}

// RecipeRepository persists recipes together with their tag and ingredient
// links. Every method is scoped to the owning user.
type RecipeRepository interface {
	// CreateRecipe inserts the recipe and its links in one transaction.
	// Links to tags or ingredients the user does not own yield
	// [ErrForeignReference].
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	// SetRecipeImage stores the image key and returns the previous one.
	SetRecipeImage(ctx context.Context, userID, recipeID int64, image string) (previous *string, err error)
}

// ImageStorage stores uploaded recipe images under opaque keys.
type ImageStorage interface {
	Save(ctx context.Context, key string, r io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may be retried.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
