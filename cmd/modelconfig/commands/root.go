// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands defines the cobra command tree of the modelconfig binary.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-model-config/internal/app"
	"github.com/MKhiriev/go-model-config/internal/config"
	"github.com/MKhiriev/go-model-config/internal/logger"
	"github.com/MKhiriev/go-model-config/internal/service"
	"github.com/MKhiriev/go-model-config/internal/utils"
	"github.com/MKhiriev/go-model-config/models"
)

const role = "modelconfig"

// Execute runs the root command
func Execute(ctx context.Context, info models.AppBuildInfo) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Configuration flags are
// persistent so that every subcommand accepts them.
func NewRootCommand(info models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelconfig",
		Short: "Build and validate typed model configurations",
		Long: `modelconfig builds model configurations from typed parameters.

Each parameter type may be supplied at most once per source. Sources are
applied on top of the defaults in this order:
  - environment (MODEL_* variables)
  - command-line flags
  - config file (-c, JSON or YAML)`,
		Version:      info.String(),
		SilenceUsage: true,
	}

	config.BindFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newDemoCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// setup loads the configuration and wires the application for cmd.
// Logs go to the command's error stream so that rendered output stays
// machine-readable.
func setup(cmd *cobra.Command) (*app.App, *config.StructuredConfig, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, err := newLogger(cfg.App, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	runID := utils.NewUUIDGenerator().Generate()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("run_id", runID)
	})
	cmd.SetContext(log.WithContext(cmd.Context()))

	renderer, err := app.NewRenderer(cfg.App.Output)
	if err != nil {
		return nil, nil, err
	}

	a, err := app.NewApp(service.NewServices(log), renderer, log)
	if err != nil {
		return nil, nil, fmt.Errorf("init app error: %w", err)
	}

	return a, cfg, nil
}

func newLogger(cfg config.App, w io.Writer) (*logger.Logger, error) {
	var log *logger.Logger
	if cfg.LogFormat == config.LogFormatJSON {
		log = logger.New(role, w)
	} else {
		log = logger.NewConsoleLogger(role, w)
	}

	return log.WithLevel(cfg.LogLevel)
}
