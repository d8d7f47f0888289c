// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Field name constants used to scope user validation.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

// Password length limits. The upper bound is in bytes since that is what
// bcrypt limits.
const (
	MinPasswordLength  = 5
	MaxPasswordBytes   = 72
	msgPasswordTooLong = "Ensure this field has no more than 72 bytes."
)

// UserValidator validates registration, token and profile update inputs.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.TokenRequest:
		return v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(*value, fields...)

	case models.CreateUserParams:
		return v.validateCreateUserParams(value, fields...)
	case *models.CreateUserParams:
		return v.validateCreateUserParams(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, FieldEmail, request.Email)
		case FieldPassword:
			checkPassword(errs, request.Password)
		case FieldName:
			checkText(errs, FieldName, request.Name, MaxCharFieldLength)
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateTokenRequest(request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, FieldEmail, request.Email)
		case FieldPassword:
			// whitespace is significant in passwords, only "" is blank
			switch {
			case request.Password == nil:
				errs.Add(FieldPassword, MsgRequired)
			case *request.Password == "":
				errs.Add(FieldPassword, MsgBlank)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateUserUpdate(update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil {
				checkText(errs, FieldName, update.Name, MaxCharFieldLength)
			}
		case FieldPassword:
			if update.Password != nil {
				checkPassword(errs, update.Password)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func (v *UserValidator) validateCreateUserParams(params models.CreateUserParams, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	errs := ValidationErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(params.Email) == "" {
				errs.Add(FieldEmail, MsgEmailMissing)
			}
		case FieldPassword:
			if params.Password != nil {
				checkPassword(errs, params.Password)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.Err()
}

func checkPassword(errs ValidationErrors, password *string) {
	switch {
	case password == nil:
		errs.Add(FieldPassword, MsgRequired)
	case *password == "":
		errs.Add(FieldPassword, MsgBlank)
	case utf8.RuneCountInString(*password) < MinPasswordLength:
		errs.Add(FieldPassword, MsgMinLength(MinPasswordLength))
	case len(*password) > MaxPasswordBytes:
		errs.Add(FieldPassword, msgPasswordTooLong)
	}
}
