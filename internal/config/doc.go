// Package config provides configuration loading, merging, and validation
// facilities for the modelconfig command.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-empty fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or YAML config file
//
// Model parameters are not merged field by field. Each source contributes
// its own [models.ParameterLayer], kept in the order above, so that the
// caller can apply them one after another on top of the default record.
//
// The main entry point is [GetStructuredConfig].
package config
