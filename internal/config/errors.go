package config

import "errors"

// Errors returned while loading or validating the configuration.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level or output format).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedConfigFormat indicates a config file whose extension is
	// neither .json nor .yaml/.yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrInvalidModelParameter indicates a model parameter that could not be
	// parsed from its source.
	ErrInvalidModelParameter = errors.New("invalid model parameter")
)
