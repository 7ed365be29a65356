package modelconfig

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-config/internal/validators"
	"github.com/MKhiriev/go-model-config/models"
)

// Builder constructs and validates model configurations using the injected
// validator. The zero value is not usable; use [NewBuilder].
type Builder struct {
	validator validators.Validator
}

// NewBuilder returns a Builder that checks parameter lists and resolved
// configurations with validator.
func NewBuilder(validator validators.Validator) *Builder {
	return &Builder{validator: validator}
}

var defaultBuilder = NewBuilder(validators.NewModelConfigValidator())

// Build returns the default record with params applied.
// See [Builder.Build].
func Build(params ...models.Parameter) (models.ModelConfig, error) {
	return defaultBuilder.Build(params...)
}

// BuildFrom returns base with params applied.
// See [Builder.BuildFrom].
func BuildFrom(base models.ModelConfig, params ...models.Parameter) (models.ModelConfig, error) {
	return defaultBuilder.BuildFrom(base, params...)
}

// Validate resolves cfg and checks its constraints.
// See [Builder.Validate].
func Validate(cfg models.ModelConfig) (models.ResolvedModelConfig, error) {
	return defaultBuilder.Validate(cfg)
}

// Build returns [models.DefaultModelConfig] with params applied.
func (b *Builder) Build(params ...models.Parameter) (models.ModelConfig, error) {
	return b.BuildFrom(models.DefaultModelConfig(), params...)
}

// BuildFrom returns base with params applied in the order given.
//
// Only params are checked for repeated kinds; fields already customized in
// base are not. If the check fails, no parameter is applied and the zero
// ModelConfig is returned together with the error.
func (b *Builder) BuildFrom(base models.ModelConfig, params ...models.Parameter) (models.ModelConfig, error) {
	if err := b.validator.Validate(context.Background(), params); err != nil {
		return models.ModelConfig{}, fmt.Errorf("build model config: %w", err)
	}

	cfg := base
	for _, p := range params {
		cfg = cfg.Update(p)
	}

	return cfg, nil
}

// Validate resolves derived lengths of cfg and checks the resolved values
// against the configuration constraints. On failure the zero
// ResolvedModelConfig is returned.
func (b *Builder) Validate(cfg models.ModelConfig) (models.ResolvedModelConfig, error) {
	resolved := Resolve(cfg)
	if err := b.validator.Validate(context.Background(), resolved); err != nil {
		return models.ResolvedModelConfig{}, fmt.Errorf("validate model config: %w", err)
	}

	return resolved, nil
}
