// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field name constants used to scope recipe validation.
const (
	FieldTitle       = "title"
	FieldTimeMinutes = "time_minutes"
	FieldPrice       = "price"
	FieldLink        = "link"
	FieldTags        = "tags"
	FieldIngredients = "ingredients"
	FieldImage       = "image"
)

// RecipeValidator validates tag, ingredient and recipe inputs.
type RecipeValidator struct {
}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NameRequest:
		return v.validateNameRequest(value, fields...)
	case *models.NameRequest:
		return v.validateNameRequest(*value, fields...)

	case models.RecipeRequest:
		return v.validateRecipeRequest(value, fields...)
	case *models.RecipeRequest:
		return v.validateRecipeRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecipeValidator) validateNameRequest(request models.NameRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			checkText(errs, FieldName, request.Name, MaxCharFieldLength)
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *RecipeValidator) validateRecipeRequest(request models.RecipeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldTimeMinutes, FieldPrice, FieldLink, FieldTags, FieldIngredients}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			checkText(errs, FieldTitle, request.Title, MaxCharFieldLength)
		case FieldTimeMinutes:
			switch {
			case request.TimeMinutes == nil:
				errs.Add(FieldTimeMinutes, MsgRequired)
			case *request.TimeMinutes < 0:
				errs.Add(FieldTimeMinutes, MsgMinValue(0))
			}
		case FieldPrice:
			if request.Price == nil {
				errs.Add(FieldPrice, MsgRequired)
			}
		case FieldLink:
			if utf8.RuneCountInString(request.Link) > MaxCharFieldLength {
				errs.Add(FieldLink, MsgMaxLength(MaxCharFieldLength))
			}
		case FieldTags:
			checkIDs(errs, FieldTags, request.Tags)
		case FieldIngredients:
			checkIDs(errs, FieldIngredients, request.Ingredients)
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func checkIDs(errs ValidationErrors, field string, ids []int64) {
	for _, id := range ids {
		if id <= 0 {
			errs.Add(field, MsgInvalidID)
			return
		}
	}
}
