// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-model-config/internal/modelconfig"
	"github.com/MKhiriev/go-model-config/models"
)

type modelConfigService struct {
	builder *modelconfig.Builder
}

// NewModelConfigService returns a ModelConfigService backed by builder.
func NewModelConfigService(builder *modelconfig.Builder) ModelConfigService {
	return &modelConfigService{builder: builder}
}

func (s *modelConfigService) Compose(ctx context.Context, layers ...models.ParameterLayer) (models.ModelConfig, error) {
	cfg, err := s.builder.Build()
	if err != nil {
		return models.ModelConfig{}, err
	}

	for _, layer := range layers {
		if err := ctx.Err(); err != nil {
			return models.ModelConfig{}, err
		}

		cfg, err = s.builder.BuildFrom(cfg, layer.Parameters...)
		if err != nil {
			return models.ModelConfig{}, fmt.Errorf("layer %q: %w", layer.Source, err)
		}
	}

	return cfg, nil
}

func (s *modelConfigService) Resolve(ctx context.Context, cfg models.ModelConfig) (models.ResolvedModelConfig, error) {
	if err := ctx.Err(); err != nil {
		return models.ResolvedModelConfig{}, err
	}

	return s.builder.Validate(cfg)
}
