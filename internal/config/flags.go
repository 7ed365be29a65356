package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-model-config/models"
)

// Flag names registered by BindFlags.
const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"
	flagConfig    = "config"
)

// flagName returns the command-line name of a model parameter,
// e.g. "max-context-length".
func flagName(kind models.Kind) string {
	return strings.ReplaceAll(kind.String(), "_", "-")
}

func isToggle(kind models.Kind) bool {
	switch kind {
	case models.KindExceptions, models.KindBenchmark, models.KindDev:
		return true
	default:
		return false
	}
}

// BindFlags registers every configuration flag on fs.
//
// Flags:
//
//	--log-level          minimum log level
//	--log-format         json or console
//	-o/--output          text, json or yaml
//	-c/--config          JSON or YAML config file path
//	--exceptions, --benchmark, --dev
//	                     toggles; a bare flag means "enabled"
//	--max-context-length, --max-prompt-length, --max-generation-length,
//	--max-batch-size, --gpu-count, --gpu-rank
//	                     unsigned integers, "enabled" or "disabled"
func BindFlags(fs *pflag.FlagSet) {
	fs.String(flagLogLevel, "", "Minimum log level (debug, info, warn, error)")
	fs.String(flagLogFormat, "", "Log format (json, console)")
	fs.StringP(flagOutput, "o", "", "Output format (text, json, yaml)")
	fs.StringP(flagConfig, "c", "", "JSON or YAML config file path")

	for _, kind := range models.AllKinds() {
		name := flagName(kind)
		if isToggle(kind) {
			fs.String(name, "", fmt.Sprintf("Set %s (true, false, enabled, disabled)", kind))
			fs.Lookup(name).NoOptDefVal = "enabled"
			continue
		}
		fs.String(name, "", fmt.Sprintf("Set %s (number, enabled, disabled)", kind))
	}
}

// ParseFlags reads the flags registered by BindFlags from an already parsed
// fs. Only flags that were explicitly set contribute; model parameters set
// on the command line become a single layer with source "flags".
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	cfg.App.LogLevel = changedString(fs, flagLogLevel)
	cfg.App.LogFormat = changedString(fs, flagLogFormat)
	cfg.App.Output = changedString(fs, flagOutput)
	cfg.FilePath = changedString(fs, flagConfig)

	var params []models.Parameter
	for _, kind := range models.AllKinds() {
		name := flagName(kind)
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}

		value, err := fs.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("error reading flag --%s: %w", name, err)
		}

		p, err := models.ParseParameter(kind.String(), value)
		if err != nil {
			return nil, fmt.Errorf("%w: flag --%s: %w", ErrInvalidModelParameter, name, err)
		}
		params = append(params, p)
	}

	cfg.ModelLayers = layerOf(SourceFlags, params)
	return cfg, nil
}

func changedString(fs *pflag.FlagSet, name string) string {
	if fs.Lookup(name) == nil || !fs.Changed(name) {
		return ""
	}

	value, err := fs.GetString(name)
	if err != nil {
		return ""
	}
	return value
}
