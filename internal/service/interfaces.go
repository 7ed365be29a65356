package service

import (
	"context"

	"github.com/MKhiriev/go-model-config/models"
)

// ModelConfigService composes model configurations from layered sources and
// resolves them into their validated, derived form.
type ModelConfigService interface {
	// Compose starts from the default record and applies every layer in
	// order. Each layer is checked for repeated parameter kinds on its own.
	Compose(ctx context.Context, layers ...models.ParameterLayer) (models.ModelConfig, error)

	// Resolve fills in derived lengths and checks the configuration
	// constraints.
	Resolve(ctx context.Context, cfg models.ModelConfig) (models.ResolvedModelConfig, error)
}

// ModelConfigServiceWrapper defines middleware composition for
// ModelConfigService. Implementations wrap an existing ModelConfigService to
// add behavior such as logging.
type ModelConfigServiceWrapper interface {
	Wrap(ModelConfigService) ModelConfigService // returns a decorated ModelConfigService applying additional behavior
}
