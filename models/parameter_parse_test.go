package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "snake case", input: "max_context_length", want: KindMaxContextLength},
		{name: "kebab case", input: "gpu-rank", want: KindGPURank},
		{name: "upper case with spaces", input: "  DEV ", want: KindDev},
		{name: "unknown", input: "temperature", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownParameter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParameter(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		value string
		want  Parameter
	}{
		{name: "bool true", kind: "dev", value: "true", want: DevEnabled},
		{name: "bool enabled", kind: "benchmark", value: "enabled", want: BenchmarkEnabled},
		{name: "bool disabled", kind: "exceptions", value: "Disabled", want: ExceptionsDisabled},
		{name: "bool numeric", kind: "dev", value: "0", want: DevDisabled},
		{name: "uint decimal", kind: "max_batch_size", value: "23", want: MaxBatchSize(23)},
		{name: "uint enabled sentinel", kind: "max_prompt_length", value: "enabled", want: MaxPromptLengthEnabled},
		{name: "uint disabled sentinel", kind: "gpu_rank", value: "disabled", want: GPURankDisabled},
		{name: "uint max", kind: "max_context_length", value: "18446744073709551615", want: MaxContextLength(math.MaxUint64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParameter(tt.kind, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParameter_Errors(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		value   string
		wantErr error
	}{
		{name: "unknown kind", kind: "top_k", value: "1", wantErr: ErrUnknownParameter},
		{name: "bool garbage", kind: "dev", value: "maybe", wantErr: ErrInvalidParameterValue},
		{name: "negative uint", kind: "gpu_count", value: "-1", wantErr: ErrInvalidParameterValue},
		{name: "uint overflow", kind: "gpu_count", value: "18446744073709551616", wantErr: ErrInvalidParameterValue},
		{name: "uint empty", kind: "max_batch_size", value: "", wantErr: ErrInvalidParameterValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParameter(tt.kind, tt.value)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewBoolParameter_WrongKind(t *testing.T) {
	_, err := NewBoolParameter(KindGPUCount, true)
	assert.ErrorIs(t, err, ErrInvalidParameterValue)
}

func TestNewUintParameter_WrongKind(t *testing.T) {
	_, err := NewUintParameter(KindDev, 1)
	assert.ErrorIs(t, err, ErrInvalidParameterValue)
}
