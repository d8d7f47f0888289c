// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// bcrypt accepts work factors in [4, 31].
const (
	minHashCost = 4
	maxHashCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.PasswordHashCost < minHashCost || cfg.App.PasswordHashCost > maxHashCost {
		return fmt.Errorf("%w: password hash cost %d is out of range [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, minHashCost, maxHashCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unknown database driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.WaitInterval <= 0 || cfg.Storage.DB.WaitTimeout < cfg.Storage.DB.WaitInterval {
		return fmt.Errorf("%w: database wait interval must be positive and not exceed the wait timeout", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.S3.Bucket == "" && cfg.Storage.Files.BinaryDataDir == "" {
		return fmt.Errorf("%w: either an S3 bucket or an image directory is required", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.S3.Bucket != "" && cfg.Storage.S3.Region == "" {
		return fmt.Errorf("%w: S3 region is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return fmt.Errorf("%w: address %q has no http(s) scheme", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	return nil
}
