// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against stored bcrypt hashes and hands out opaque,
// database-backed tokens.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	// userService owns the password comparison rules.
	userService UserService

	// hasher is used for the dummy comparison on unknown emails.
	hasher *utils.PasswordHasher

	// generateKey produces new token keys.
	generateKey func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(
	userRepository store.UserRepository,
	tokenRepository store.TokenRepository,
	userService UserService,
	hasher *utils.PasswordHasher,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		userService:     userService,
		hasher:          hasher,
		generateKey:     utils.GenerateTokenKey,
		logger:          logger,
	}
}

// Authenticate looks the user up by normalized email and verifies password.
//
// Every failure mode that depends on the account (unknown email, wrong or
// unusable password, inactive user) returns [ErrInvalidCredentials]. A
// password hash is still computed for unknown emails so that response
// timing does not reveal which emails are registered.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, utils.NormalizeEmail(email))
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.DummyCompare(password)
		log.Info().Msg("authentication failed: unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.userService.CheckPassword(user, password) {
		log.Info().Int64("user_id", user.UserID).Msg("authentication failed: wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Info().Int64("user_id", user.UserID).Msg("authentication failed: inactive user")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken returns the user's token, creating it on first use. Repeated
// calls return the same key.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	key, err := a.generateKey()
	if err != nil {
		log.Err(err).Msg("error generating token key")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, user.UserID, key)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("error storing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveToken returns the active user owning key.
//
// Returns [ErrInvalidToken] for an empty or unknown key and
// [ErrUserInactive] when the owner has been deactivated.
func (a *authService) ResolveToken(ctx context.Context, key string) (models.User, error) {
	if key == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.tokenRepository.FindUserByTokenKey(ctx, key)
	if errors.Is(err, store.ErrTokenNotFound) {
		return models.User{}, ErrInvalidToken
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrUserInactive
	}

	return user, nil
}
