// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func newTestHasher() *utils.PasswordHasher {
	return utils.NewPasswordHasher(bcrypt.MinCost)
}

func newTestUserSvc(t *testing.T) (*userService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, newTestHasher(), logger.Nop()).(*userService), repo
}

func ptr[T any](v T) *T { return &v }

// echoUser returns the user passed to CreateUser with an id assigned.
func echoUser(_ context.Context, u models.User) (models.User, error) {
	u.UserID = 1
	return u, nil
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_NormalizesEmailAndHashesPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, u models.User) (models.User, error) {
			stored = u
			return echoUser(ctx, u)
		},
	)

	user, err := svc.CreateUser(context.Background(), models.CreateUserParams{
		Email:    "  Test@EXAMPLE.com ",
		Password: ptr("testpass123"),
		Name:     " Test Name ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Test@example.com", stored.Email)
	assert.Equal(t, "Test Name", stored.Name)
	assert.NotEqual(t, "testpass123", stored.PasswordHash)
	assert.True(t, svc.CheckPassword(user, "testpass123"))
	assert.Equal(t, models.DefaultPermissions(), stored.Permissions)
}

func TestUserService_CreateUser_NormalizesEmailDomains(t *testing.T) {
	tests := []struct{ in, want string }{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			svc, repo := newTestUserSvc(t)
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUser)

			user, err := svc.CreateUser(context.Background(), models.CreateUserParams{Email: tt.in, Password: ptr("sample123")})
			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Email)
		})
	}
}

func TestUserService_CreateUser_MissingEmail(t *testing.T) {
	for _, email := range []string{"", "   "} {
		svc, _ := newTestUserSvc(t)

		_, err := svc.CreateUser(context.Background(), models.CreateUserParams{Email: email, Password: ptr("test123")})
		require.Error(t, err)

		var verrs validators.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, []string{validators.MsgEmailMissing}, verrs[validators.FieldEmail])
	}
}

func TestUserService_CreateUser_WithoutPasswordIsUnusable(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUser)

	user, err := svc.CreateUser(context.Background(), models.CreateUserParams{Email: "nopass@example.com"})
	require.NoError(t, err)

	assert.False(t, user.HasUsablePassword())
	assert.True(t, strings.HasPrefix(user.PasswordHash, models.UnusablePasswordPrefix))
	assert.False(t, svc.CheckPassword(user, ""))
	assert.False(t, svc.CheckPassword(user, user.PasswordHash))
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.CreateUserParams{Email: "a@example.com", Password: ptr("pass123")})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_CreateSuperuser(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUser)

	user, err := svc.CreateSuperuser(context.Background(), "admin@example.com", "test123")
	require.NoError(t, err)

	assert.True(t, user.IsActive)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.True(t, svc.CheckPassword(user, "test123"))
}

// ── CheckPassword ────────────────────────────────────────────────────────────

func TestUserService_CheckPassword(t *testing.T) {
	svc, _ := newTestUserSvc(t)
	hash, err := newTestHasher().Hash("right-password")
	require.NoError(t, err)
	user := models.User{PasswordHash: hash}

	assert.True(t, svc.CheckPassword(user, "right-password"))
	assert.False(t, svc.CheckPassword(user, "wrong-password"))
	assert.False(t, svc.CheckPassword(user, ""))
	assert.False(t, svc.CheckPassword(models.User{}, "right-password"))
}

// ── UpdateUser ───────────────────────────────────────────────────────────────

func TestUserService_UpdateUser_NameOnlyKeepsPassword(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, patch models.UserPatch) (models.User, error) {
			require.NotNil(t, patch.Name)
			assert.Equal(t, "New Name", *patch.Name)
			assert.Nil(t, patch.PasswordHash)
			return models.User{UserID: 5, Name: *patch.Name}, nil
		},
	)

	user, err := svc.UpdateUser(context.Background(), 5, models.UserUpdate{Name: ptr(" New Name ")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", user.Name)
}

func TestUserService_UpdateUser_PasswordIsHashed(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, patch models.UserPatch) (models.User, error) {
			require.NotNil(t, patch.PasswordHash)
			assert.NotEqual(t, "newpassword123", *patch.PasswordHash)
			return models.User{UserID: 5, PasswordHash: *patch.PasswordHash}, nil
		},
	)

	user, err := svc.UpdateUser(context.Background(), 5, models.UserUpdate{Password: ptr("newpassword123")})
	require.NoError(t, err)
	assert.True(t, svc.CheckPassword(user, "newpassword123"))
	assert.False(t, svc.CheckPassword(user, "testpass123"))
}

func TestUserService_UpdateUser_InvalidValues(t *testing.T) {
	svc, _ := newTestUserSvc(t)

	_, err := svc.UpdateUser(context.Background(), 5, models.UserUpdate{Password: ptr("pw")})
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, validators.FieldPassword)

	_, err = svc.UpdateUser(context.Background(), 5, models.UserUpdate{Name: ptr("   ")})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, validators.FieldName)
}

func TestUserService_UpdateUser_RepositoryError(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("db down"))

	_, err := svc.UpdateUser(context.Background(), 5, models.UserUpdate{Name: ptr("x")})
	assert.ErrorContains(t, err, "user update ended with error")
}

// ── GetUser ──────────────────────────────────────────────────────────────────

func TestUserService_GetUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{UserID: 3, Email: "a@example.com"}, nil)

	user, err := svc.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetUser(context.Background(), 3)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
