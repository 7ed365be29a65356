// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-model-config/models"
)

// envConfig mirrors the environment variables understood by the command.
type envConfig struct {
	App      App            `envPrefix:"APP_"`
	Model    ModelOverrides `envPrefix:"MODEL_"`
	FilePath string         `env:"CONFIG"`
}

// ModelOverrides holds the textual model parameter values of one source.
// A nil field means the source does not set that parameter.
type ModelOverrides struct {
	Exceptions          *string `env:"EXCEPTIONS"`
	MaxContextLength    *string `env:"MAX_CONTEXT_LENGTH"`
	MaxPromptLength     *string `env:"MAX_PROMPT_LENGTH"`
	MaxGenerationLength *string `env:"MAX_GENERATION_LENGTH"`
	MaxBatchSize        *string `env:"MAX_BATCH_SIZE"`
	GPUCount            *string `env:"GPU_COUNT"`
	GPURank             *string `env:"GPU_RANK"`
	Benchmark           *string `env:"BENCHMARK"`
	Dev                 *string `env:"DEV"`
}

func (o ModelOverrides) values() map[models.Kind]*string {
	return map[models.Kind]*string{
		models.KindExceptions:          o.Exceptions,
		models.KindMaxContextLength:    o.MaxContextLength,
		models.KindMaxPromptLength:     o.MaxPromptLength,
		models.KindMaxGenerationLength: o.MaxGenerationLength,
		models.KindMaxBatchSize:        o.MaxBatchSize,
		models.KindGPUCount:            o.GPUCount,
		models.KindGPURank:             o.GPURank,
		models.KindBenchmark:           o.Benchmark,
		models.KindDev:                 o.Dev,
	}
}

// Parameters converts the set fields into descriptors, in models.AllKinds
// order.
func (o ModelOverrides) Parameters() ([]models.Parameter, error) {
	values := o.values()

	var params []models.Parameter
	for _, kind := range models.AllKinds() {
		value := values[kind]
		if value == nil {
			continue
		}

		p, err := models.ParseParameter(kind.String(), *value)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidModelParameter, err)
		}
		params = append(params, p)
	}

	return params, nil
}

// parseEnv reads the configuration from environment variables using the
// caarlos0/env library. Model parameters set through MODEL_* variables
// become a single layer with source "env".
//
// Returns a wrapped error if env.Parse fails or a model parameter value
// cannot be parsed.
func parseEnv() (*StructuredConfig, error) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	params, err := ec.Model.Parameters()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &StructuredConfig{
		App:         ec.App,
		FilePath:    ec.FilePath,
		ModelLayers: layerOf(SourceEnv, params),
	}, nil
}

func layerOf(source string, params []models.Parameter) []models.ParameterLayer {
	if len(params) == 0 {
		return nil
	}

	return []models.ParameterLayer{{Source: source, Parameters: params}}
}
