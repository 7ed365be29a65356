// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-model-config/internal/logger"
	"github.com/MKhiriev/go-model-config/internal/service"
	"github.com/MKhiriev/go-model-config/models"
)

// SourceDemo names the layer of a demo scenario.
const SourceDemo = "demo"

// App runs the demo and build commands.
type App struct {
	services *service.Services
	renderer Renderer

	logger *logger.Logger
}

// NewApp wires the runtime dependencies of the commands.
func NewApp(services *service.Services, renderer Renderer, logger *logger.Logger) (*App, error) {
	if services == nil || services.ModelConfigService == nil {
		return nil, fmt.Errorf("%w: services", ErrNilDependency)
	}
	if renderer == nil {
		return nil, fmt.Errorf("%w: renderer", ErrNilDependency)
	}
	if logger == nil {
		return nil, fmt.Errorf("%w: logger", ErrNilDependency)
	}

	return &App{
		services: services,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// RunDemo builds every demo scenario and renders one report per scenario.
// A rejected scenario is reported, not returned: only rendering errors are.
func (a *App) RunDemo(ctx context.Context, w io.Writer) error {
	scenarios := DemoScenarios()

	reports := make([]Report, 0, len(scenarios))
	for _, sc := range scenarios {
		reports = append(reports, a.runScenario(ctx, sc))
	}

	return a.render(w, reports...)
}

// RunBuild composes the defaults with layers, validates the result and
// renders it. Any failure is returned after being logged.
func (a *App) RunBuild(ctx context.Context, w io.Writer, layers ...models.ParameterLayer) error {
	svc := a.services.ModelConfigService

	cfg, err := svc.Compose(ctx, layers...)
	if err != nil {
		a.logger.Error().Err(err).Msg(MsgConfigRejected)
		return err
	}
	a.logger.Info().Int("layers", len(layers)).Msg(MsgConfigBuilt)

	resolved, err := svc.Resolve(ctx, cfg)
	if err != nil {
		a.logger.Error().Err(err).Msg(MsgConfigInvalid)
		return err
	}
	a.logger.Info().Msg(MsgConfigResolved)

	return a.render(w, Report{Name: "build", Config: &cfg, Resolved: &resolved})
}

func (a *App) runScenario(ctx context.Context, sc Scenario) Report {
	log := a.logger.With().Str("scenario", sc.Name).Logger()
	svc := a.services.ModelConfigService
	rep := Report{Name: sc.Name}

	cfg, err := svc.Compose(ctx, models.ParameterLayer{Source: SourceDemo, Parameters: sc.Parameters})
	if err != nil {
		log.Warn().Err(err).Msg(MsgConfigRejected)
		rep.Error = err.Error()
		return rep
	}
	log.Info().Msg(MsgConfigBuilt)
	rep.Config = &cfg

	if !sc.Validate {
		return rep
	}

	resolved, err := svc.Resolve(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg(MsgConfigInvalid)
		rep.Error = err.Error()
		return rep
	}
	log.Info().
		Uint64("max_prompt_length", resolved.MaxPromptLength).
		Uint64("max_generation_length", resolved.MaxGenerationLength).
		Msg(MsgConfigResolved)
	rep.Resolved = &resolved

	return rep
}

func (a *App) render(w io.Writer, reports ...Report) error {
	if err := a.renderer.Render(w, reports...); err != nil {
		a.logger.Error().Err(err).Msg(MsgRenderFailed)
		return err
	}
	return nil
}
