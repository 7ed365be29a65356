package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseKind returns the Kind whose name matches name (case-insensitive,
// '-' and '_' are interchangeable).
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, k := range AllKinds() {
		if k.String() == normalized {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// ParseParameter builds the descriptor of the named kind from its textual
// value.
//
// Boolean kinds accept anything strconv.ParseBool does plus "enabled" and
// "disabled". Integer kinds accept an unsigned decimal number, "enabled"
// (the maximum sentinel) or "disabled" (zero).
func ParseParameter(name, value string) (Parameter, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindExceptions, KindBenchmark, KindDev:
		b, err := parseFlag(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidParameterValue, kind, value, err)
		}
		return NewBoolParameter(kind, b)
	default:
		n, err := parseQuantity(value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q: %w", ErrInvalidParameterValue, kind, value, err)
		}
		return NewUintParameter(kind, n)
	}
}

// NewBoolParameter returns the boolean descriptor of the given kind.
func NewBoolParameter(kind Kind, value bool) (Parameter, error) {
	switch kind {
	case KindExceptions:
		return Exceptions(value), nil
	case KindBenchmark:
		return Benchmark(value), nil
	case KindDev:
		return Dev(value), nil
	default:
		return nil, fmt.Errorf("%w: %s does not carry a boolean", ErrInvalidParameterValue, kind)
	}
}

// NewUintParameter returns the integer descriptor of the given kind.
func NewUintParameter(kind Kind, value uint64) (Parameter, error) {
	switch kind {
	case KindMaxContextLength:
		return MaxContextLength(value), nil
	case KindMaxPromptLength:
		return MaxPromptLength(value), nil
	case KindMaxGenerationLength:
		return MaxGenerationLength(value), nil
	case KindMaxBatchSize:
		return MaxBatchSize(value), nil
	case KindGPUCount:
		return GPUCount(value), nil
	case KindGPURank:
		return GPURank(value), nil
	default:
		return nil, fmt.Errorf("%w: %s does not carry an integer", ErrInvalidParameterValue, kind)
	}
}

func parseFlag(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "enabled":
		return true, nil
	case "disabled":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(value))
}

func parseQuantity(value string) (uint64, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "enabled":
		return math.MaxUint64, nil
	case "disabled":
		return 0, nil
	}
	return strconv.ParseUint(strings.TrimSpace(value), 10, 64)
}
