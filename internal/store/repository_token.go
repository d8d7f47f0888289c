// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] over the "auth_tokens"
// table.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken inserts key for userID and reads back whichever token the
// user owns. Concurrent callers converge on the first stored key.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, key string) (models.Token, error) {
	log := logger.FromContext(ctx)

	insert, insertArgs, err := r.db.builder.
		Insert("auth_tokens").
		Columns("token_key", "user_id").
		Values(key, userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	selectQuery, selectArgs, err := r.db.builder.
		Select("token_key", "user_id", "created_at").
		From("auth_tokens").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, insert, insertArgs...); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error inserting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var token models.Token
	err = r.db.QueryRowContext(ctx, selectQuery, selectArgs...).
		Scan(&token.Key, &token.UserID, scanTime(&token.CreatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Token{}, ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error selecting token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// FindUserByTokenKey returns the owner of the token identified by key.
func (r *tokenRepository) FindUserByTokenKey(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	columns := make([]string, 0, len(userColumns))
	for _, c := range userColumns {
		columns = append(columns, "u."+c)
	}

	query, args, err := r.db.builder.
		Select(columns...).
		From("auth_tokens t").
		Join("users u ON u.user_id = t.user_id").
		Where(sq.Eq{"t.token_key": key}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenKey").Msg("error selecting token owner")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}
