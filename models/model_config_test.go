// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func customConfig() ModelConfig {
	return ModelConfig{
		Exceptions:          ExceptionsEnabled,
		MaxContextLength:    4096,
		MaxPromptLength:     1000,
		MaxGenerationLength: 3000,
		MaxBatchSize:        8,
		GPUCount:            4,
		GPURank:             3,
		Benchmark:           BenchmarkEnabled,
		Dev:                 DevEnabled,
	}
}

// different returns one parameter per kind whose value differs from the
// corresponding field of c.
func different(c ModelConfig) []Parameter {
	return []Parameter{
		!c.Exceptions,
		c.MaxContextLength + 1,
		c.MaxPromptLength + 1,
		c.MaxGenerationLength + 1,
		c.MaxBatchSize + 1,
		c.GPUCount + 1,
		c.GPURank + 1,
		!c.Benchmark,
		!c.Dev,
	}
}

func changedFields(before, after ModelConfig) []string {
	b := reflect.ValueOf(before)
	a := reflect.ValueOf(after)
	var changed []string
	for i := 0; i < b.NumField(); i++ {
		if b.Field(i).Interface() != a.Field(i).Interface() {
			changed = append(changed, b.Type().Field(i).Name)
		}
	}
	return changed
}

// ── DefaultModelConfig ────────────────────────────────────────────────────────

func TestDefaultModelConfig(t *testing.T) {
	cfg := DefaultModelConfig()

	assert.Equal(t, ExceptionsDisabled, cfg.Exceptions)
	assert.Equal(t, MaxContextLength(1024), cfg.MaxContextLength)
	assert.Equal(t, MaxPromptLength(math.MaxUint64), cfg.MaxPromptLength)
	assert.Equal(t, MaxGenerationLength(math.MaxUint64), cfg.MaxGenerationLength)
	assert.Equal(t, MaxBatchSize(1), cfg.MaxBatchSize)
	assert.Equal(t, GPUCount(1), cfg.GPUCount)
	assert.Equal(t, GPURank(0), cfg.GPURank)
	assert.Equal(t, BenchmarkDisabled, cfg.Benchmark)
	assert.Equal(t, DevDisabled, cfg.Dev)
}

// ── Update ────────────────────────────────────────────────────────────────────

// TestUpdate_TouchesOnlyOwnField verifies that every parameter kind changes
// exactly the record field named after its type, whatever the other fields hold.
func TestUpdate_TouchesOnlyOwnField(t *testing.T) {
	bases := map[string]ModelConfig{
		"defaults": DefaultModelConfig(),
		"custom":   customConfig(),
		"zero":     {},
	}

	for name, base := range bases {
		for _, p := range different(base) {
			typeName := reflect.TypeOf(p).Name()
			t.Run(name+"/"+typeName, func(t *testing.T) {
				updated := base.Update(p)

				assert.Equal(t, []string{typeName}, changedFields(base, updated))
				assert.Equal(t, p, reflect.ValueOf(updated).FieldByName(typeName).Interface())
			})
		}
	}
}

// TestUpdate_DoesNotMutateReceiver verifies that Update works on a copy.
func TestUpdate_DoesNotMutateReceiver(t *testing.T) {
	base := DefaultModelConfig()
	_ = base.Update(MaxBatchSize(23))

	assert.Equal(t, DefaultModelConfig(), base)
}

// TestUpdate_NilParameter verifies that a nil parameter leaves the record unchanged.
func TestUpdate_NilParameter(t *testing.T) {
	base := customConfig()
	assert.Equal(t, base, base.Update(nil))
}

// TestRecord_HasOneFieldPerKind verifies that the record, the kind list and
// the Parameters projection stay in sync.
func TestRecord_HasOneFieldPerKind(t *testing.T) {
	recordType := reflect.TypeOf(ModelConfig{})
	require.Equal(t, len(AllKinds()), recordType.NumField())

	params := customConfig().Parameters()
	require.Len(t, params, len(AllKinds()))
	for i, k := range AllKinds() {
		assert.Equal(t, k, params[i].Kind())
		assert.Equal(t, recordType.Field(i).Name, reflect.TypeOf(params[i]).Name())
	}
}

// TestParameters_RoundTrip verifies that applying a record's parameters to
// any base reproduces the record.
func TestParameters_RoundTrip(t *testing.T) {
	want := customConfig()
	got := ModelConfig{}
	for _, p := range want.Parameters() {
		got = got.Update(p)
	}
	assert.Equal(t, want, got)
}

// ── Kind ──────────────────────────────────────────────────────────────────────

func TestKind_String(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range AllKinds() {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate kind name %q", name)
		seen[name] = true
	}
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "max_context_length", KindMaxContextLength.String())
}

func TestSentinels_AreScalarBounds(t *testing.T) {
	assert.Equal(t, uint64(0), uint64(MaxPromptLengthDisabled))
	assert.Equal(t, uint64(math.MaxUint64), uint64(MaxPromptLengthEnabled))
	assert.False(t, bool(DevDisabled))
	assert.True(t, bool(DevEnabled))
}
