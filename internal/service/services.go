// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type Services struct {
	UserService    UserService
	AuthService    AuthService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of repositories. db backs the
// health check.
func NewServices(
	repositories *store.Repositories,
	imageStorage store.ImageStorage,
	db Pinger,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) *Services {
	hasher := utils.NewPasswordHasher(cfg.App.PasswordHashCost)
	userService := NewUserService(repositories.UserRepository, hasher, logger)

	return &Services{
		UserService:    userService,
		AuthService:    NewAuthService(repositories.UserRepository, repositories.TokenRepository, userService, hasher, logger),
		RecipeService:  NewRecipeValidationService().Wrap(NewRecipeService(repositories, imageStorage, logger)),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, db, logger),
	}
}
