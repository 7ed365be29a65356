package service

import (
	"github.com/MKhiriev/go-model-config/internal/logger"
	"github.com/MKhiriev/go-model-config/internal/modelconfig"
	"github.com/MKhiriev/go-model-config/internal/validators"
)

type Services struct {
	ModelConfigService ModelConfigService
}

func NewServices(logger *logger.Logger) *Services {
	builder := modelconfig.NewBuilder(validators.NewModelConfigValidator())

	return &Services{
		ModelConfigService: NewModelConfigLoggingService(logger).Wrap(NewModelConfigService(builder)),
	}
}
