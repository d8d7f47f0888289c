// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func fieldErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	require.Error(t, err)
	var errs ValidationErrors
	require.True(t, errors.As(err, &errs), "expected ValidationErrors, got %T", err)
	return errs
}

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUserValidator_UnknownField(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestUserValidator_RegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		request models.RegisterRequest
		want    ValidationErrors
	}{
		{
			name:    "valid",
			request: models.RegisterRequest{Email: ptr("test@example.com"), Password: ptr("testpass123"), Name: ptr("Test Name")},
		},
		{
			name:    "missing everything",
			request: models.RegisterRequest{},
			want: ValidationErrors{
				FieldEmail:    {MsgRequired},
				FieldPassword: {MsgRequired},
				FieldName:     {MsgRequired},
			},
		},
		{
			name:    "password too short",
			request: models.RegisterRequest{Email: ptr("test@example.com"), Password: ptr("pw"), Name: ptr("Test Name")},
			want:    ValidationErrors{FieldPassword: {MsgMinLength(MinPasswordLength)}},
		},
		{
			name:    "password too long for bcrypt",
			request: models.RegisterRequest{Email: ptr("test@example.com"), Password: ptr(strings.Repeat("x", 73)), Name: ptr("Test Name")},
			want:    ValidationErrors{FieldPassword: {msgPasswordTooLong}},
		},
		{
			name:    "invalid email",
			request: models.RegisterRequest{Email: ptr("not-an-email"), Password: ptr("testpass123"), Name: ptr("Test Name")},
			want:    ValidationErrors{FieldEmail: {MsgInvalidEmail}},
		},
		{
			name:    "blank name",
			request: models.RegisterRequest{Email: ptr("test@example.com"), Password: ptr("testpass123"), Name: ptr("   ")},
			want:    ValidationErrors{FieldName: {MsgBlank}},
		},
		{
			name:    "name too long",
			request: models.RegisterRequest{Email: ptr("test@example.com"), Password: ptr("testpass123"), Name: ptr(strings.Repeat("n", 256))},
			want:    ValidationErrors{FieldName: {MsgMaxLength(MaxCharFieldLength)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.request)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestUserValidator_RegisterRequest_Scoped(t *testing.T) {
	v := NewUserValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{Email: ptr("test@example.com")}, FieldEmail)
	assert.NoError(t, err)
}

func TestUserValidator_TokenRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TokenRequest{Email: ptr("test@example.com"), Password: ptr("pw")}))

	// whitespace-only passwords are not trimmed
	assert.NoError(t, v.Validate(ctx, models.TokenRequest{Email: ptr("test@example.com"), Password: ptr("   ")}))

	errs := fieldErrors(t, v.Validate(ctx, models.TokenRequest{Email: ptr("test@example.com"), Password: ptr("")}))
	assert.Equal(t, ValidationErrors{FieldPassword: {MsgBlank}}, errs)

	errs = fieldErrors(t, v.Validate(ctx, &models.TokenRequest{}))
	assert.Equal(t, ValidationErrors{FieldEmail: {MsgRequired}, FieldPassword: {MsgRequired}}, errs)
}

func TestUserValidator_UserUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.UserUpdate{}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Name: ptr("Updated")}))
	assert.NoError(t, v.Validate(ctx, models.UserUpdate{Password: ptr("newpass123")}))

	errs := fieldErrors(t, v.Validate(ctx, &models.UserUpdate{Name: ptr(""), Password: ptr("abc")}))
	assert.Equal(t, ValidationErrors{
		FieldName:     {MsgBlank},
		FieldPassword: {MsgMinLength(MinPasswordLength)},
	}, errs)
}

func TestUserValidator_CreateUserParams(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateUserParams{Email: "test@example.com"}))

	errs := fieldErrors(t, v.Validate(ctx, models.CreateUserParams{Email: "  "}))
	assert.Equal(t, ValidationErrors{FieldEmail: {MsgEmailMissing}}, errs)

	// a nil password is a valid "no credential" request
	assert.NoError(t, v.Validate(ctx, &models.CreateUserParams{Email: "a@b.c"}, FieldEmail, FieldPassword))
}
