// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Kind is the tag that identifies a parameter descriptor type.
// Two parameters are considered the same parameter when their Kind matches,
// regardless of the values they carry.
type Kind uint8

const (
	KindExceptions Kind = iota + 1
	KindMaxContextLength
	KindMaxPromptLength
	KindMaxGenerationLength
	KindMaxBatchSize
	KindGPUCount
	KindGPURank
	KindBenchmark
	KindDev
)

var kindNames = map[Kind]string{
	KindExceptions:          "exceptions",
	KindMaxContextLength:    "max_context_length",
	KindMaxPromptLength:     "max_prompt_length",
	KindMaxGenerationLength: "max_generation_length",
	KindMaxBatchSize:        "max_batch_size",
	KindGPUCount:            "gpu_count",
	KindGPURank:             "gpu_rank",
	KindBenchmark:           "benchmark",
	KindDev:                 "dev",
}

// String returns the snake_case name of the kind, e.g. "max_context_length".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// AllKinds returns every known parameter kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindExceptions,
		KindMaxContextLength,
		KindMaxPromptLength,
		KindMaxGenerationLength,
		KindMaxBatchSize,
		KindGPUCount,
		KindGPURank,
		KindBenchmark,
		KindDev,
	}
}

// Parameter is a single strongly-typed configuration value.
//
// The set of implementations is closed: only the descriptor types declared
// in this package satisfy it. Each implementation owns exactly one field of
// [ModelConfig].
type Parameter interface {
	// Kind reports which descriptor type the parameter is.
	Kind() Kind

	parameter()
}

// Exceptions toggles exception-based error reporting in the runtime.
type Exceptions bool

const (
	ExceptionsDisabled Exceptions = false
	ExceptionsEnabled  Exceptions = true
)

// Benchmark toggles benchmark instrumentation.
type Benchmark bool

const (
	BenchmarkDisabled Benchmark = false
	BenchmarkEnabled  Benchmark = true
)

// Dev toggles developer diagnostics.
type Dev bool

const (
	DevDisabled Dev = false
	DevEnabled  Dev = true
)

// MaxContextLength is the total number of tokens a sequence may hold.
type MaxContextLength uint64

const (
	MaxContextLengthDisabled MaxContextLength = 0
	MaxContextLengthEnabled  MaxContextLength = math.MaxUint64
)

// MaxPromptLength is the number of tokens reserved for the prompt.
// MaxPromptLengthEnabled means "derive from MaxContextLength".
type MaxPromptLength uint64

const (
	MaxPromptLengthDisabled MaxPromptLength = 0
	MaxPromptLengthEnabled  MaxPromptLength = math.MaxUint64
)

// MaxGenerationLength is the number of tokens reserved for generation.
// MaxGenerationLengthEnabled means "derive from MaxContextLength".
type MaxGenerationLength uint64

const (
	MaxGenerationLengthDisabled MaxGenerationLength = 0
	MaxGenerationLengthEnabled  MaxGenerationLength = math.MaxUint64
)

// MaxBatchSize is the number of sequences processed together.
type MaxBatchSize uint64

const (
	MaxBatchSizeDisabled MaxBatchSize = 0
	MaxBatchSizeEnabled  MaxBatchSize = math.MaxUint64
)

// GPUCount is the number of devices the model is spread across.
type GPUCount uint64

const (
	GPUCountDisabled GPUCount = 0
	GPUCountEnabled  GPUCount = math.MaxUint64
)

// GPURank is the index of the device this process drives.
type GPURank uint64

const (
	GPURankDisabled GPURank = 0
	GPURankEnabled  GPURank = math.MaxUint64
)

func (Exceptions) Kind() Kind          { return KindExceptions }
func (MaxContextLength) Kind() Kind    { return KindMaxContextLength }
func (MaxPromptLength) Kind() Kind     { return KindMaxPromptLength }
func (MaxGenerationLength) Kind() Kind { return KindMaxGenerationLength }
func (MaxBatchSize) Kind() Kind        { return KindMaxBatchSize }
func (GPUCount) Kind() Kind            { return KindGPUCount }
func (GPURank) Kind() Kind             { return KindGPURank }
func (Benchmark) Kind() Kind           { return KindBenchmark }
func (Dev) Kind() Kind                 { return KindDev }

func (Exceptions) parameter()          {}
func (MaxContextLength) parameter()    {}
func (MaxPromptLength) parameter()     {}
func (MaxGenerationLength) parameter() {}
func (MaxBatchSize) parameter()        {}
func (GPUCount) parameter()            {}
func (GPURank) parameter()             {}
func (Benchmark) parameter()           {}
func (Dev) parameter()                 {}

// ParameterLayer is an ordered set of parameters contributed by one
// configuration source (environment, flags, file).
type ParameterLayer struct {
	// Source names where the parameters came from, e.g. "env".
	Source string

	// Parameters are applied on top of the previous layer's result.
	Parameters []Parameter
}
