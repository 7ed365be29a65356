package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-model-config/models"
)

func newTestFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

// TestFlagName tests the mapping from kinds to flag names
func TestFlagName(t *testing.T) {
	assert.Equal(t, "max-context-length", flagName(models.KindMaxContextLength))
	assert.Equal(t, "gpu-rank", flagName(models.KindGPURank))
	assert.Equal(t, "dev", flagName(models.KindDev))
}

// TestBindFlags_RegistersEveryKind checks that each parameter kind has a flag.
func TestBindFlags_RegistersEveryKind(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	for _, kind := range models.AllKinds() {
		f := fs.Lookup(flagName(kind))
		require.NotNil(t, f, kind.String())
		if isToggle(kind) {
			assert.Equal(t, "enabled", f.NoOptDefVal, kind.String())
		} else {
			assert.Empty(t, f.NoOptDefVal, kind.String())
		}
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "app flags",
			args: []string{
				"--log-level", "warn",
				"--log-format", "json",
				"-o", "yaml",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "warn", cfg.App.LogLevel)
				assert.Equal(t, "json", cfg.App.LogFormat)
				assert.Equal(t, "yaml", cfg.App.Output)
				assert.Equal(t, "/path/to/config.json", cfg.FilePath)
				assert.Empty(t, cfg.ModelLayers)
			},
		},
		{
			name: "config long flag",
			args: []string{"--config", "/path/to/config.yaml"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.yaml", cfg.FilePath)
			},
		},
		{
			name: "model flags in kind order",
			args: []string{
				"--dev",
				"--max-batch-size", "23",
				"--benchmark=disabled",
				"--max-context-length=enabled",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				require.Len(t, cfg.ModelLayers, 1)
				assert.Equal(t, SourceFlags, cfg.ModelLayers[0].Source)
				assert.Equal(t, []models.Parameter{
					models.MaxContextLengthEnabled,
					models.MaxBatchSize(23),
					models.BenchmarkDisabled,
					models.DevEnabled,
				}, cfg.ModelLayers[0].Parameters)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFlagSet(t, tt.args...)

			cfg, err := ParseFlags(fs)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidModelValue tests ParseFlags with values that do not
// fit the parameter type
func TestParseFlags_InvalidModelValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "negative", args: []string{"--gpu-count=-1"}},
		{name: "text for number", args: []string{"--max-batch-size", "many"}},
		{name: "bad toggle", args: []string{"--exceptions=sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFlagSet(t, tt.args...)

			cfg, err := ParseFlags(fs)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidModelParameter)
		})
	}
}

// TestParseFlags_UnboundFlagSet checks that a flag set without the model
// flags yields an empty config.
func TestParseFlags_UnboundFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("bare", pflag.ContinueOnError)
	require.NoError(t, fs.Parse(nil))

	cfg, err := ParseFlags(fs)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
