// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-recipe-keeper/internal/logger"

// Repositories bundles every repository built on one [DB].
type Repositories struct {
	UserRepository       UserRepository
	TokenRepository      TokenRepository
	TagRepository        TagRepository
	IngredientRepository IngredientRepository
	RecipeRepository     RecipeRepository
}

// NewRepositories constructs all repositories over db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		TokenRepository:      NewTokenRepository(db, log),
		TagRepository:        NewTagRepository(db, log),
		IngredientRepository: NewIngredientRepository(db, log),
		RecipeRepository:     NewRecipeRepository(db, log),
	}
}
