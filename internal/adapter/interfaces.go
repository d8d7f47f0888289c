// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the recipe API.
//
// [APIClient] hides the transport from callers. Error responses are mapped
// to the sentinel values in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines communication with the recipe API server.
type APIClient interface {
	// SetToken stores the token attached to all subsequent authenticated
	// requests.
	SetToken(token string)

	// Token returns the stored token, or an empty string if none is set.
	Token() string

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, email, password string) (string, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.UserResponse, error)

	// UpdateMe applies a partial profile update.
	UpdateMe(ctx context.Context, update models.UserUpdate) (models.UserResponse, error)

	CreateTag(ctx context.Context, name string) (models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)

	CreateIngredient(ctx context.Context, name string) (models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)

	CreateRecipe(ctx context.Context, req models.RecipeRequest) (models.Recipe, error)
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error

	// UploadRecipeImage sends content as the recipe's image in a multipart
	// form under the "image" field.
	UploadRecipeImage(ctx context.Context, recipeID int64, fileName string, content io.Reader) (models.RecipeImageResponse, error)

	// Health reports the server status. A server that cannot reach its
	// database answers with [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthResponse, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
