// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const pngHeader = "\x89PNG\r\n\x1a\n"

type recipeMocks struct {
	tags        *mock.MockTagRepository
	ingredients *mock.MockIngredientRepository
	recipes     *mock.MockRecipeRepository
	images      *mock.MockImageStorage
}

// newTestRecipeSvc returns the validated service stack with mocks.
func newTestRecipeSvc(t *testing.T) (RecipeService, recipeMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := recipeMocks{
		tags:        mock.NewMockTagRepository(ctrl),
		ingredients: mock.NewMockIngredientRepository(ctrl),
		recipes:     mock.NewMockRecipeRepository(ctrl),
		images:      mock.NewMockImageStorage(ctrl),
	}
	repos := &store.Repositories{
		TagRepository:        m.tags,
		IngredientRepository: m.ingredients,
		RecipeRepository:     m.recipes,
	}
	return NewRecipeValidationService().Wrap(NewRecipeService(repos, m.images, logger.Nop())), m
}

func validRecipeRequest() models.RecipeRequest {
	price := models.Price(550)
	return models.RecipeRequest{
		Title:       ptr(" Soup "),
		TimeMinutes: ptr(10),
		Price:       &price,
		Tags:        []int64{1, 2},
		Ingredients: []int64{3},
	}
}

// ── tags & ingredients ───────────────────────────────────────────────────────

func TestRecipeService_CreateTag(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.tags.EXPECT().CreateTag(gomock.Any(), models.Tag{UserID: 7, Name: "Vegan"}).
		Return(models.Tag{TagID: 1, UserID: 7, Name: "Vegan"}, nil)

	tag, err := svc.CreateTag(context.Background(), 7, models.NameRequest{Name: ptr(" Vegan ")})
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.TagID)
}

func TestRecipeService_CreateTag_Invalid(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.CreateTag(context.Background(), 7, models.NameRequest{})
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{validators.MsgRequired}, verrs[validators.FieldName])
}

func TestRecipeService_Ingredients(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.ingredients.EXPECT().CreateIngredient(gomock.Any(), models.Ingredient{UserID: 7, Name: "Salt"}).
		Return(models.Ingredient{IngredientID: 3, UserID: 7, Name: "Salt"}, nil)
	m.ingredients.EXPECT().ListIngredients(gomock.Any(), int64(7)).
		Return([]models.Ingredient{{IngredientID: 3, Name: "Salt"}}, nil)

	_, err := svc.CreateIngredient(context.Background(), 7, models.NameRequest{Name: ptr("Salt")})
	require.NoError(t, err)

	list, err := svc.ListIngredients(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.CreateIngredient(context.Background(), 7, models.NameRequest{Name: ptr(" ")})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestRecipeService_ListTags_Error(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.tags.EXPECT().ListTags(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))

	_, err := svc.ListTags(context.Background(), 7)
	assert.ErrorContains(t, err, "tag listing ended with error")
}

// ── recipes ──────────────────────────────────────────────────────────────────

func TestRecipeService_CreateRecipe(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	m.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Recipe) (models.Recipe, error) {
			assert.Equal(t, int64(7), r.UserID)
			assert.Equal(t, "Soup", r.Title)
			assert.Equal(t, 10, r.TimeMinutes)
			assert.Equal(t, models.Price(550), r.Price)
			assert.Equal(t, []int64{1, 2}, r.TagIDs())
			assert.Equal(t, []int64{3}, r.IngredientIDs())
			r.RecipeID = 11
			return r, nil
		},
	)

	recipe, err := svc.CreateRecipe(context.Background(), 7, validRecipeRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(11), recipe.RecipeID)
}

func TestRecipeService_CreateRecipe_ForeignReferences(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		field string
	}{
		{"tag", store.ErrUnknownTag, validators.FieldTags},
		{"ingredient", store.ErrUnknownIngredient, validators.FieldIngredients},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestRecipeSvc(t)
			m.recipes.EXPECT().CreateRecipe(gomock.Any(), gomock.Any()).Return(models.Recipe{}, tt.err)

			_, err := svc.CreateRecipe(context.Background(), 7, validRecipeRequest())
			var verrs validators.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, []string{validators.MsgInvalidID}, verrs[tt.field])
		})
	}
}

func TestRecipeService_CreateRecipe_Invalid(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.CreateRecipe(context.Background(), 7, models.RecipeRequest{})
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, validators.FieldTitle)
	assert.Contains(t, verrs, validators.FieldTimeMinutes)
	assert.Contains(t, verrs, validators.FieldPrice)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(99)).Return(models.Recipe{}, store.ErrRecipeNotFound)

	_, err := svc.GetRecipe(context.Background(), 7, 99)
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
}

func TestRecipeService_DeleteRecipe_RemovesImage(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	image := "uploads/recipe/old.png"

	gomock.InOrder(
		m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{RecipeID: 11, Image: &image}, nil),
		m.recipes.EXPECT().DeleteRecipe(gomock.Any(), int64(7), int64(11)).Return(nil),
		m.images.EXPECT().Delete(gomock.Any(), image).Return(errors.New("already gone")),
	)

	assert.NoError(t, svc.DeleteRecipe(context.Background(), 7, 11))
}

func TestRecipeService_DeleteRecipe_NotFound(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{}, store.ErrRecipeNotFound)

	assert.ErrorIs(t, svc.DeleteRecipe(context.Background(), 7, 11), store.ErrRecipeNotFound)
}

// ── images ───────────────────────────────────────────────────────────────────

func TestRecipeService_UploadRecipeImage(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	previous := "uploads/recipe/old.png"
	content := pngHeader + strings.Repeat("x", 1000)

	var savedKey string
	gomock.InOrder(
		m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{RecipeID: 11, Title: "Soup"}, nil),
		m.images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), "image/png").DoAndReturn(
			func(_ context.Context, key string, r io.Reader, _ string) error {
				savedKey = key
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, content, string(data), "sniffed bytes must not be lost")
				return nil
			},
		),
		m.recipes.EXPECT().SetRecipeImage(gomock.Any(), int64(7), int64(11), gomock.Any()).Return(&previous, nil),
		m.images.EXPECT().Delete(gomock.Any(), previous).Return(nil),
	)

	recipe, err := svc.UploadRecipeImage(context.Background(), 7, 11, "../../etc/My Photo.PNG", strings.NewReader(content))
	require.NoError(t, err)

	require.NotNil(t, recipe.Image)
	assert.Equal(t, savedKey, *recipe.Image)
	assert.True(t, strings.HasPrefix(savedKey, "uploads/recipe/"))
	assert.True(t, strings.HasSuffix(savedKey, ".PNG"))
	assert.NotContains(t, savedKey, "Photo")
	assert.NotContains(t, savedKey, "..")
}

func TestRecipeService_UploadRecipeImage_NotAnImage(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{RecipeID: 11}, nil)

	_, err := svc.UploadRecipeImage(context.Background(), 7, 11, "notes.png", strings.NewReader("just some text"))
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{validators.MsgInvalidImage}, verrs[validators.FieldImage])
}

func TestRecipeService_UploadRecipeImage_NoFile(t *testing.T) {
	svc, _ := newTestRecipeSvc(t)

	_, err := svc.UploadRecipeImage(context.Background(), 7, 11, "", nil)
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{validators.MsgNoFile}, verrs[validators.FieldImage])
}

func TestRecipeService_UploadRecipeImage_RollsBackOnUpdateError(t *testing.T) {
	svc, m := newTestRecipeSvc(t)

	var savedKey string
	m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{RecipeID: 11}, nil)
	m.images.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string, _ io.Reader, _ string) error {
			savedKey = key
			return nil
		},
	)
	m.recipes.EXPECT().SetRecipeImage(gomock.Any(), int64(7), int64(11), gomock.Any()).Return(nil, store.ErrRecipeNotFound)
	m.images.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) error {
			assert.Equal(t, savedKey, key)
			return nil
		},
	)

	_, err := svc.UploadRecipeImage(context.Background(), 7, 11, "a.png", strings.NewReader(pngHeader))
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
}

func TestRecipeService_UploadRecipeImage_ForeignRecipe(t *testing.T) {
	svc, m := newTestRecipeSvc(t)
	m.recipes.EXPECT().GetRecipe(gomock.Any(), int64(7), int64(11)).Return(models.Recipe{}, store.ErrRecipeNotFound)

	_, err := svc.UploadRecipeImage(context.Background(), 7, 11, "a.png", strings.NewReader(pngHeader))
	assert.ErrorIs(t, err, store.ErrRecipeNotFound)
}
