// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// NewImageStorage returns the S3 storage when a bucket is configured and the
// local directory storage otherwise.
func NewImageStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (ImageStorage, error) {
	if cfg.S3.Bucket != "" {
		return NewS3ImageStorage(ctx, cfg.S3, log)
	}
	return NewFileImageStorage(cfg.Files.BinaryDataDir, log)
}
