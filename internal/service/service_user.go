// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// userService is the concrete implementation of UserService.
// It normalizes emails, hashes passwords with bcrypt and delegates
// persistence to a UserRepository.
type userService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	// hasher produces and verifies salted password hashes.
	hasher *utils.PasswordHasher

	validator validators.Validator
	logger    *logger.Logger
}

// NewUserService constructs a UserService. The returned service is safe for
// concurrent use.
func NewUserService(userRepository store.UserRepository, hasher *utils.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// CreateUser creates an account from params.
//
// The email is normalized and must not be blank. A nil Password stores an
// unusable hash, so the account cannot log in until a password is set.
// Permissions default to [models.DefaultPermissions].
//
// Returns the persisted user or:
//   - [validators.ValidationErrors] if the email is missing.
//   - a wrapped [store.ErrEmailAlreadyExists] if the email is taken.
func (s *userService) CreateUser(ctx context.Context, params models.CreateUserParams) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, params, validators.FieldEmail); err != nil {
		log.Warn().Err(err).Msg("invalid user data provided")
		return models.User{}, err
	}

	user := models.User{
		Email:       utils.NormalizeEmail(params.Email),
		Name:        strings.TrimSpace(params.Name),
		Permissions: models.DefaultPermissions(),
	}
	if params.Permissions != nil {
		user.Permissions = *params.Permissions
	}

	var err error
	if params.Password == nil {
		user.PasswordHash, err = s.hasher.UnusableHash()
	} else {
		user.PasswordHash, err = s.hasher.Hash(*params.Password)
	}
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	createdUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", createdUser.UserID).Msg("user created")
	return createdUser, nil
}

// CreateSuperuser creates an active staff superuser in a single insert.
func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (models.User, error) {
	permissions := models.SuperuserPermissions()
	return s.CreateUser(ctx, models.CreateUserParams{
		Email:       email,
		Password:    &password,
		Permissions: &permissions,
	})
}

// CheckPassword reports whether password matches the stored hash of user.
// Unusable hashes and empty passwords never match.
func (s *userService) CheckPassword(user models.User, password string) bool {
	if password == "" || !user.HasUsablePassword() {
		return false
	}
	return s.hasher.Compare(user.PasswordHash, password)
}

// UpdateUser applies the non-nil fields of update to the user. A new
// password is hashed before it reaches storage.
func (s *userService) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Warn().Err(err).Msg("invalid user update provided")
		return models.User{}, err
	}

	var patch models.UserPatch
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		patch.Name = &name
	}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Msg("error hashing password")
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		patch.PasswordHash = &hash
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, userID, patch)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// GetUser returns the user with userID.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}
