// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-model-config/models"
)

// Log formats accepted by App.LogFormat.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Output formats accepted by App.Output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Layer sources reported in models.ParameterLayer.Source.
const (
	SourceEnv   = "env"
	SourceFlags = "flags"
	SourceFile  = "file"
)

// StructuredConfig is the top-level configuration container for the
// modelconfig command. It is populated by merging defaults, environment
// variables, command-line flags and an optional config file.
type StructuredConfig struct {
	// App holds settings of the command itself: logging and rendering.
	App App `json:"app" yaml:"app"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	FilePath string `json:"-" yaml:"-"`

	// ModelLayers are the model parameter overrides of every source, in
	// priority order. Empty layers are omitted.
	ModelLayers []models.ParameterLayer `json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum level emitted by the logger
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level" yaml:"log_level"`

	// LogFormat selects JSON or human-readable console logs.
	// Env: APP_LOG_FORMAT
	LogFormat string `env:"LOG_FORMAT" json:"log_format" yaml:"log_format"`

	// Output selects how resolved configurations are rendered
	// ("text", "json", "yaml").
	// Env: APP_OUTPUT
	Output string `env:"OUTPUT" json:"output" yaml:"output"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:  "info",
			LogFormat: LogFormatConsole,
			Output:    OutputText,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-empty fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered with BindFlags on fs
//  4. Config file (path resolved from sources 2 and 3)
//
// fs may be nil, in which case the flag layer is skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
