package modelconfig

import (
	"math"

	"github.com/MKhiriev/go-model-config/models"
)

// Resolve projects cfg into its resolved view without checking constraints.
//
// A prompt or generation length still holding the "enabled" sentinel
// (math.MaxUint64) becomes ceil(max_context_length / 2). No other field is
// derived.
func Resolve(cfg models.ModelConfig) models.ResolvedModelConfig {
	contextLength := uint64(cfg.MaxContextLength)

	return models.ResolvedModelConfig{
		Exceptions:          bool(cfg.Exceptions),
		MaxContextLength:    contextLength,
		MaxPromptLength:     derive(uint64(cfg.MaxPromptLength), contextLength),
		MaxGenerationLength: derive(uint64(cfg.MaxGenerationLength), contextLength),
		MaxBatchSize:        uint64(cfg.MaxBatchSize),
		GPUCount:            uint64(cfg.GPUCount),
		GPURank:             uint64(cfg.GPURank),
		Benchmark:           bool(cfg.Benchmark),
		Dev:                 bool(cfg.Dev),
	}
}

func derive(value, basis uint64) uint64 {
	if value == math.MaxUint64 {
		return ceilDiv(basis, 2)
	}
	return value
}

// ceilDiv does not overflow for a near math.MaxUint64, unlike (a+b-1)/b.
func ceilDiv(a, b uint64) uint64 {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
