// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Defaults applied by [DefaultModelConfig].
const (
	DefaultMaxContextLength MaxContextLength = 1024
	DefaultMaxBatchSize     MaxBatchSize     = 1
	DefaultGPUCount         GPUCount         = 1
)

// ModelConfig is the fully populated model configuration record.
//
// Every field always holds a value: a field that was never customized
// carries its default, never an "absent" marker. ModelConfig is a value
// type; [ModelConfig.Update] returns a modified copy and never changes the
// receiver.
type ModelConfig struct {
	// Exceptions toggles exception-based error reporting.
	Exceptions Exceptions `json:"exceptions" yaml:"exceptions"`

	// MaxContextLength is the token capacity of a sequence. Default 1024.
	MaxContextLength MaxContextLength `json:"max_context_length" yaml:"max_context_length"`

	// MaxPromptLength defaults to MaxPromptLengthEnabled, which resolves to
	// half of MaxContextLength (rounded up).
	MaxPromptLength MaxPromptLength `json:"max_prompt_length" yaml:"max_prompt_length"`

	// MaxGenerationLength defaults to MaxGenerationLengthEnabled, which
	// resolves to half of MaxContextLength (rounded up).
	MaxGenerationLength MaxGenerationLength `json:"max_generation_length" yaml:"max_generation_length"`

	// MaxBatchSize defaults to 1.
	MaxBatchSize MaxBatchSize `json:"max_batch_size" yaml:"max_batch_size"`

	// GPUCount defaults to 1.
	GPUCount GPUCount `json:"gpu_count" yaml:"gpu_count"`

	// GPURank defaults to 0.
	GPURank GPURank `json:"gpu_rank" yaml:"gpu_rank"`

	// Benchmark toggles benchmark instrumentation.
	Benchmark Benchmark `json:"benchmark" yaml:"benchmark"`

	// Dev toggles developer diagnostics.
	Dev Dev `json:"dev" yaml:"dev"`
}

// DefaultModelConfig returns the record every build starts from when no
// base record is supplied.
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		Exceptions:          ExceptionsDisabled,
		MaxContextLength:    DefaultMaxContextLength,
		MaxPromptLength:     MaxPromptLengthEnabled,
		MaxGenerationLength: MaxGenerationLengthEnabled,
		MaxBatchSize:        DefaultMaxBatchSize,
		GPUCount:            DefaultGPUCount,
		GPURank:             GPURankDisabled,
		Benchmark:           BenchmarkDisabled,
		Dev:                 DevDisabled,
	}
}

// Update returns a copy of c with the single field owned by p replaced by p.
//
// Each case assigns exactly one field and reads nothing from c, so applying
// a set of parameters of distinct kinds gives the same record in any order.
// A nil parameter leaves the copy unchanged.
func (c ModelConfig) Update(p Parameter) ModelConfig {
	switch v := p.(type) {
	case Exceptions:
		c.Exceptions = v
	case MaxContextLength:
		c.MaxContextLength = v
	case MaxPromptLength:
		c.MaxPromptLength = v
	case MaxGenerationLength:
		c.MaxGenerationLength = v
	case MaxBatchSize:
		c.MaxBatchSize = v
	case GPUCount:
		c.GPUCount = v
	case GPURank:
		c.GPURank = v
	case Benchmark:
		c.Benchmark = v
	case Dev:
		c.Dev = v
	}
	return c
}

// Parameters returns the record as one parameter per kind, in
// [AllKinds] order. Building from the result reproduces c.
func (c ModelConfig) Parameters() []Parameter {
	return []Parameter{
		c.Exceptions,
		c.MaxContextLength,
		c.MaxPromptLength,
		c.MaxGenerationLength,
		c.MaxBatchSize,
		c.GPUCount,
		c.GPURank,
		c.Benchmark,
		c.Dev,
	}
}

// ResolvedModelConfig is the read-only view of a [ModelConfig] with derived
// lengths filled in. It is produced by resolution and validation only.
type ResolvedModelConfig struct {
	Exceptions          bool   `json:"exceptions" yaml:"exceptions"`
	MaxContextLength    uint64 `json:"max_context_length" yaml:"max_context_length"`
	MaxPromptLength     uint64 `json:"max_prompt_length" yaml:"max_prompt_length"`
	MaxGenerationLength uint64 `json:"max_generation_length" yaml:"max_generation_length"`
	MaxBatchSize        uint64 `json:"max_batch_size" yaml:"max_batch_size"`
	GPUCount            uint64 `json:"gpu_count" yaml:"gpu_count"`
	GPURank             uint64 `json:"gpu_rank" yaml:"gpu_rank"`
	Benchmark           bool   `json:"benchmark" yaml:"benchmark"`
	Dev                 bool   `json:"dev" yaml:"dev"`
}
