// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// RecipeImageDir is the storage prefix under which recipe images are kept.
const RecipeImageDir = "uploads/recipe"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// RecipeImagePath builds the storage key for an uploaded recipe image. Only
// the extension of the client-supplied filename is kept.
func RecipeImagePath(filename string) string {
	return RecipeImageDir + "/" + uuid.NewString() + filepath.Ext(filename)
}
