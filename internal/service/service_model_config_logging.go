package service

import (
	"context"

	"github.com/MKhiriev/go-model-config/internal/logger"
	"github.com/MKhiriev/go-model-config/models"
)

// ModelConfigLoggingService logs every call of the wrapped service.
type ModelConfigLoggingService struct {
	inner  ModelConfigService
	logger *logger.Logger
}

func NewModelConfigLoggingService(logger *logger.Logger) ModelConfigServiceWrapper {
	return &ModelConfigLoggingService{logger: logger}
}

func (s *ModelConfigLoggingService) Compose(ctx context.Context, layers ...models.ParameterLayer) (models.ModelConfig, error) {
	log := s.logger.GetChildLogger()
	for _, layer := range layers {
		log.Debug().
			Str("source", layer.Source).
			Int("parameters", len(layer.Parameters)).
			Msg("applying parameter layer")
	}

	cfg, err := s.inner.Compose(ctx, layers...)
	if err != nil {
		log.Err(err).Int("layers", len(layers)).Msg("error composing model config")
		return cfg, err
	}

	log.Debug().Int("layers", len(layers)).Msg("model config composed")
	return cfg, nil
}

func (s *ModelConfigLoggingService) Resolve(ctx context.Context, cfg models.ModelConfig) (models.ResolvedModelConfig, error) {
	log := s.logger.GetChildLogger()

	resolved, err := s.inner.Resolve(ctx, cfg)
	if err != nil {
		log.Err(err).
			Uint64("max_context_length", uint64(cfg.MaxContextLength)).
			Msg("model config rejected")
		return resolved, err
	}

	log.Debug().
		Uint64("max_prompt_length", resolved.MaxPromptLength).
		Uint64("max_generation_length", resolved.MaxGenerationLength).
		Msg("model config resolved")
	return resolved, nil
}

func (s *ModelConfigLoggingService) Wrap(inner ModelConfigService) ModelConfigService {
	s.inner = inner
	return s
}
