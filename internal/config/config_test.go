package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-model-config/models"
)

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*StructuredConfig) {}},
		{name: "json logs and yaml output", mutate: func(cfg *StructuredConfig) {
			cfg.App.LogFormat = LogFormatJSON
			cfg.App.Output = OutputYAML
		}},
		{name: "unknown level", mutate: func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" }, wantErr: true},
		{name: "unknown log format", mutate: func(cfg *StructuredConfig) { cfg.App.LogFormat = "xml" }, wantErr: true},
		{name: "empty output", mutate: func(cfg *StructuredConfig) { cfg.App.Output = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAppConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies defaults < env < flags < file for
// app settings and that each source contributes its own model layer.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempConfig(t, "model.yaml", `
app:
  output: yaml
parameters:
  - name: max_batch_size
    value: 16
`)
	setEnvVars(t, map[string]string{
		"APP_OUTPUT":           "json",
		"APP_LOG_LEVEL":        "warn",
		"MODEL_MAX_BATCH_SIZE": "4",
	})
	fs := newTestFlagSet(t, "--log-level", "error", "--max-batch-size", "8", "-c", path)

	cfg, err := GetStructuredConfig(fs)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, LogFormatConsole, cfg.App.LogFormat)
	assert.Equal(t, "yaml", cfg.App.Output)
	assert.Equal(t, path, cfg.FilePath)
	assert.Equal(t, []models.ParameterLayer{
		{Source: SourceEnv, Parameters: []models.Parameter{models.MaxBatchSize(4)}},
		{Source: SourceFlags, Parameters: []models.Parameter{models.MaxBatchSize(8)}},
		{Source: "file:" + path, Parameters: []models.Parameter{models.MaxBatchSize(16)}},
	}, cfg.ModelLayers)
}

// TestGetStructuredConfig_NilFlagSet verifies that defaults and env are
// enough.
func TestGetStructuredConfig_NilFlagSet(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, Defaults().App, cfg.App)
	assert.Empty(t, cfg.FilePath)
	assert.Empty(t, cfg.ModelLayers)
}

// TestGetStructuredConfig_InvalidSettings verifies that validation errors are
// returned.
func TestGetStructuredConfig_InvalidSettings(t *testing.T) {
	clearEnvVars(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-o", "xml"}))

	cfg, err := GetStructuredConfig(fs)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
