// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [ValidationErrors] value.
	ErrValidation = errors.New("invalid input")
)

// NonFieldErrors is the key used for errors not tied to a single field.
const NonFieldErrors = "non_field_errors"

// Human-readable messages placed into [ValidationErrors].
const (
	MsgRequired       = "This field is required."
	MsgBlank          = "This field may not be blank."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgEmailMissing   = "Users must have an email address."
	MsgEmailTaken     = "user with this email already exists."
	MsgBadCredentials = "Unable to authenticate with provided credentials."
	MsgInvalidID      = "Invalid pk - object does not exist."
	MsgInvalidImage   = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."
	MsgNoFile         = "No file was submitted."
)

// MsgMaxLength returns the message for a value longer than limit characters.
func MsgMaxLength(limit int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", limit)
}

// MsgMinLength returns the message for a value shorter than limit characters.
func MsgMinLength(limit int) string {
	return fmt.Sprintf("Ensure this field has at least %d characters.", limit)
}

// MsgMinValue returns the message for a number below limit.
func MsgMinValue(limit int) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", limit)
}

// ValidationErrors maps a field name to the messages describing what is wrong
// with it. The JSON form is the response body of a 400.
type ValidationErrors map[string][]string

// NewValidationError returns a ValidationErrors holding a single message.
func NewValidationError(field, msg string) ValidationErrors {
	return ValidationErrors{field: {msg}}
}

// Add appends msg to the messages of field.
func (e ValidationErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns e as an error, or nil when there are no messages.
func (e ValidationErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error renders the messages ordered by field name.
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e ValidationErrors) Unwrap() error {
	return ErrValidation
}
