// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request bodies use pointer fields so that validation can tell a missing
// field apart from a blank one.

// RegisterRequest is the body of POST /api/user/create/.
type RegisterRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// TokenRequest is the body of POST /api/user/token/.
type TokenRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// TokenResponse is returned by a successful token request.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public representation of a user. It never carries a
// password.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NameRequest is the body used to create tags and ingredients.
type NameRequest struct {
	Name *string `json:"name"`
}

// RecipeRequest is the body of POST /api/recipe/recipes/.
type RecipeRequest struct {
	Title       *string `json:"title"`
	Description string  `json:"description"`
	TimeMinutes *int    `json:"time_minutes"`
	Price       *Price  `json:"price"`
	Link        string  `json:"link"`
	Tags        []int64 `json:"tags"`
	Ingredients []int64 `json:"ingredients"`
}

// RecipeImageResponse is returned after a recipe image upload.
type RecipeImageResponse struct {
	RecipeID int64  `json:"id"`
	Image    string `json:"image"`
}

// DetailResponse carries a single human-readable message, used for
// authentication, authorization and method errors.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
