// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the checks that guard model configuration
// construction and consumption.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - Occurrence counting: how many times each parameter kind appears in
//     the arguments of a single build call.
//   - Constraints: fixed numeric rules a resolved configuration must satisfy.
//
// Usage patterns:
//  1. Validate a []models.Parameter before applying it to a record; any kind
//     supplied more than once yields a *DuplicateParameterTypeError.
//  2. Validate a models.ResolvedModelConfig before using it; a failed rule
//     yields a *ConstraintViolationError carrying the offending values.
//  3. Pass field names to restrict validation to specific rules.
package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
