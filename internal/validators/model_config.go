// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/MKhiriev/go-model-config/models"
)

// Field name constants used to specify which rules should be validated.
const (
	// FieldNonNil rejects nil entries in a parameter list.
	FieldNonNil = "non_nil"

	// FieldUniqueKinds rejects parameter lists that name a kind more than once.
	FieldUniqueKinds = "unique_kinds"

	// FieldMaxContextLength requires max_context_length > 1.
	FieldMaxContextLength = "max_context_length"

	// FieldPromptGenerationBudget requires
	// max_prompt_length + max_generation_length <= max_context_length.
	FieldPromptGenerationBudget = "prompt_generation_budget"
)

// ModelConfigValidator implements the Validator interface for parameter
// lists, parameter layers and resolved model configurations.
type ModelConfigValidator struct {
}

// NewModelConfigValidator constructs a new ModelConfigValidator
// and returns it as the Validator interface.
func NewModelConfigValidator() Validator {
	return &ModelConfigValidator{}
}

// Validate dispatches validation on the dynamic type of obj.
//
// Supported types:
//   - []models.Parameter
//   - models.ParameterLayer / *models.ParameterLayer
//   - models.ResolvedModelConfig / *models.ResolvedModelConfig
//
// Returns ErrUnsupportedType if obj does not match any of them.
func (v *ModelConfigValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case []models.Parameter:
		return v.validateParameters(ctx, value, fields...)

	case models.ParameterLayer:
		return v.validateLayer(ctx, value, fields...)
	case *models.ParameterLayer:
		if value == nil {
			return nil
		}
		return v.validateLayer(ctx, *value, fields...)

	case models.ResolvedModelConfig:
		return v.validateResolved(ctx, value, fields...)
	case *models.ResolvedModelConfig:
		if value == nil {
			return ErrNilConfig
		}
		return v.validateResolved(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateParameters checks the arguments of a single build call.
//
// Default validated fields: NonNil, UniqueKinds. All duplicated kinds are
// reported, joined with errors.Join.
func (v *ModelConfigValidator) validateParameters(_ context.Context, params []models.Parameter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNonNil, FieldUniqueKinds}
	}

	for _, f := range fields {
		switch f {
		case FieldNonNil:
			for i, p := range params {
				if p == nil {
					return fmt.Errorf("parameter at index %d: %w", i, ErrNilParameter)
				}
			}
		case FieldUniqueKinds:
			errs := Duplicates(params)
			switch len(errs) {
			case 0:
			case 1:
				return errs[0]
			default:
				return errors.Join(errs...)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ModelConfigValidator) validateLayer(ctx context.Context, layer models.ParameterLayer, fields ...string) error {
	if err := v.validateParameters(ctx, layer.Parameters, fields...); err != nil {
		return fmt.Errorf("layer %q: %w", layer.Source, err)
	}
	return nil
}

// validateResolved checks the numeric constraints of a resolved config.
//
// Default validated fields: MaxContextLength, PromptGenerationBudget, in
// that order.
func (v *ModelConfigValidator) validateResolved(_ context.Context, cfg models.ResolvedModelConfig, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMaxContextLength, FieldPromptGenerationBudget}
	}

	for _, f := range fields {
		switch f {
		case FieldMaxContextLength:
			if cfg.MaxContextLength <= 1 {
				return &ConstraintViolationError{
					Constraint: ConstraintContextLengthTooShort,
					Values: []KindValue{
						{Kind: models.KindMaxContextLength, Value: cfg.MaxContextLength},
					},
				}
			}
		case FieldPromptGenerationBudget:
			sum, carry := bits.Add64(cfg.MaxPromptLength, cfg.MaxGenerationLength, 0)
			if carry != 0 || sum > cfg.MaxContextLength {
				return &ConstraintViolationError{
					Constraint: ConstraintPromptOrGenerationLengthTooLarge,
					Values: []KindValue{
						{Kind: models.KindMaxContextLength, Value: cfg.MaxContextLength},
						{Kind: models.KindMaxGenerationLength, Value: cfg.MaxGenerationLength},
						{Kind: models.KindMaxPromptLength, Value: cfg.MaxPromptLength},
					},
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
