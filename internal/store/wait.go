// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// WaitForDB pings db every interval until it answers or timeout elapses.
func WaitForDB(ctx context.Context, db *sql.DB, interval, timeout time.Duration, log *logger.Logger) error {
	log.Info().Str("func", "WaitForDB").Msg("waiting for database...")

	attempt := 0
	backoff := retry.WithMaxDuration(timeout, retry.NewConstant(interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Msg("database unavailable, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "WaitForDB").Msg("database did not become available")
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	log.Info().Str("func", "WaitForDB").Msg("database available!")
	return nil
}
