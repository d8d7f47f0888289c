// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// UserService manages user accounts.
type UserService interface {
	CreateUser(ctx context.Context, params models.CreateUserParams) (models.User, error)
	CreateSuperuser(ctx context.Context, email, password string) (models.User, error)
	CheckPassword(user models.User, password string) bool
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// AuthService verifies credentials and manages opaque auth tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	IssueToken(ctx context.Context, user models.User) (models.Token, error)
	ResolveToken(ctx context.Context, key string) (models.User, error)
}

// RecipeService manages a user's recipes, tags and ingredients. Every method
// is scoped to userID.
type RecipeService interface {
	CreateTag(ctx context.Context, userID int64, request models.NameRequest) (models.Tag, error)
	ListTags(ctx context.Context, userID int64) ([]models.Tag, error)

	CreateIngredient(ctx context.Context, userID int64, request models.NameRequest) (models.Ingredient, error)
	ListIngredients(ctx context.Context, userID int64) ([]models.Ingredient, error)

	CreateRecipe(ctx context.Context, userID int64, request models.RecipeRequest) (models.Recipe, error)
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, userID, recipeID int64) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID int64) error
	UploadRecipeImage(ctx context.Context, userID, recipeID int64, filename string, content io.Reader) (models.Recipe, error)
}

// AppInfoService reports the version and health of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}
