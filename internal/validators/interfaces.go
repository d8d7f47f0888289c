// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request payloads and
// domain inputs.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationErrors: field name to messages map returned by validators.
//     It implements error and matches [ErrValidation] with errors.Is.
//
// Usage patterns:
//  1. Inject Validator implementations into services.
//  2. Call Validate with context, value, and optional field names to enforce rules.
//  3. Render a returned ValidationErrors as the response body.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
