// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// unknownVersion is reported when neither config nor build flags set one.
const unknownVersion = "N/A"

// Pinger is implemented by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type appInfoService struct {
	appVersion string
	db         Pinger

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version, falling back to the version baked
// into the binary at build time.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, db Pinger, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		version = unknownVersion
	}

	return &appInfoService{
		appVersion: version,
		db:         db,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping checks that the database answers.
func (s *appInfoService) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return nil
}
