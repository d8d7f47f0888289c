// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	authScheme     = "Token"
	imageFormField = "image"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an HTTP implementation of [APIClient] for the
// server at cfg.HTTPAddress. A bare host:port gets an http:// scheme.
func NewHTTPAPIClient(cfg config.ClientAdapter, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("API response")
		return nil
	})

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the account fields to /api/user/create/.
func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		Post("/api/user/create/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

// Login POSTs the credentials to /api/user/token/ and keeps the returned
// token for later requests.
func (h *httpAPIClient) Login(ctx context.Context, email, password string) (string, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.TokenRequest{Email: &email, Password: &password}).
		SetResult(&token).
		Post("/api/user/token/")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.Token == "" {
		return "", fmt.Errorf("login: empty token in response")
	}

	h.SetToken(token.Token)
	return token.Token, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.UserResponse, error) {
	var user models.UserResponse
	if err := h.getJSON(ctx, "/api/user/me/", &user); err != nil {
		return models.UserResponse{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) UpdateMe(ctx context.Context, update models.UserUpdate) (models.UserResponse, error) {
	var user models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetBody(update).
		SetResult(&user).
		Patch("/api/user/me/")
	if err != nil {
		return models.UserResponse{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserResponse{}, err
	}

	return user, nil
}

func (h *httpAPIClient) CreateTag(ctx context.Context, name string) (models.Tag, error) {
	var tag models.Tag
	if err := h.postJSON(ctx, "/api/recipe/tags/", models.NameRequest{Name: &name}, &tag); err != nil {
		return models.Tag{}, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (h *httpAPIClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := h.getJSON(ctx, "/api/recipe/tags/", &tags); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (h *httpAPIClient) CreateIngredient(ctx context.Context, name string) (models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := h.postJSON(ctx, "/api/recipe/ingredients/", models.NameRequest{Name: &name}, &ingredient); err != nil {
		return models.Ingredient{}, fmt.Errorf("create ingredient: %w", err)
	}
	return ingredient, nil
}

func (h *httpAPIClient) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := h.getJSON(ctx, "/api/recipe/ingredients/", &ingredients); err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return ingredients, nil
}

func (h *httpAPIClient) CreateRecipe(ctx context.Context, req models.RecipeRequest) (models.Recipe, error) {
	var recipe models.Recipe
	if err := h.postJSON(ctx, "/api/recipe/recipes/", req, &recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

func (h *httpAPIClient) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := h.getJSON(ctx, "/api/recipe/recipes/", &recipes); err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (h *httpAPIClient) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var recipe models.Recipe
	if err := h.getJSON(ctx, recipePath(recipeID), &recipe); err != nil {
		return models.Recipe{}, fmt.Errorf("get recipe %d: %w", recipeID, err)
	}
	return recipe, nil
}

func (h *httpAPIClient) DeleteRecipe(ctx context.Context, recipeID int64) error {
	resp, err := h.authedRequest(ctx).Delete(recipePath(recipeID))
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpAPIClient) UploadRecipeImage(ctx context.Context, recipeID int64, fileName string, content io.Reader) (models.RecipeImageResponse, error) {
	if content == nil {
		return models.RecipeImageResponse{}, ErrEmptyContent
	}

	var image models.RecipeImageResponse

	resp, err := h.authedRequest(ctx).
		SetFileReader(imageFormField, fileName, content).
		SetResult(&image).
		Post(recipePath(recipeID) + "upload-image/")
	if err != nil {
		return models.RecipeImageResponse{}, fmt.Errorf("upload image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipeImageResponse{}, err
	}

	return image, nil
}

func (h *httpAPIClient) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health/")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpAPIClient) getJSON(ctx context.Context, path string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpAPIClient) postJSON(ctx context.Context, path string, body, result any) error {
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", authScheme+" "+token)
	}
	return req
}

func recipePath(recipeID int64) string {
	return "/api/recipe/recipes/" + strconv.FormatInt(recipeID, 10) + "/"
}
