// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Tag labels recipes for filtering. Each tag is owned by exactly one user.
// Names are not unique within a user's scope.
type Tag struct {
	TagID  int64  `json:"id"`
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

// Ingredient is a user-owned ingredient that recipes can reference.
// Names are not unique within a user's scope.
type Ingredient struct {
	IngredientID int64  `json:"id"`
	UserID       int64  `json:"-"`
	Name         string `json:"name"`
}

// Recipe is a user-owned recipe associated with zero or more tags and
// ingredients.
type Recipe struct {
	RecipeID    int64  `json:"id"`
	UserID      int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// TimeMinutes is the preparation duration in minutes.
	TimeMinutes int `json:"time_minutes"`

	Price Price  `json:"price"`
	Link  string `json:"link"`

	// Image is the storage key of the uploaded photo, nil if none.
	Image *string `json:"image"`

	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
}

// TagIDs returns the identifiers of the recipe's tags.
func (r Recipe) TagIDs() []int64 {
	ids := make([]int64, 0, len(r.Tags))
	for _, t := range r.Tags {
		ids = append(ids, t.TagID)
	}
	return ids
}

// IngredientIDs returns the identifiers of the recipe's ingredients.
func (r Recipe) IngredientIDs() []int64 {
	ids := make([]int64, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		ids = append(ids, i.IngredientID)
	}
	return ids
}
