package app

import "github.com/MKhiriev/go-model-config/models"

// Report is the outcome of one composed configuration.
// Config is set once the record was built. Resolved is set only for records
// that passed validation. Error holds the first failure.
type Report struct {
	Name     string                      `json:"name" yaml:"name"`
	Config   *models.ModelConfig         `json:"config,omitempty" yaml:"config,omitempty"`
	Resolved *models.ResolvedModelConfig `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Error    string                      `json:"error,omitempty" yaml:"error,omitempty"`
}

// Scenario is a named list of parameters built on top of the defaults.
type Scenario struct {
	Name       string
	Parameters []models.Parameter

	// Validate asks for the resolved view in addition to the record.
	Validate bool
}

// DemoScenarios returns the example configurations shown by the demo
// command. The last one supplies Exceptions twice and is always rejected.
func DemoScenarios() []Scenario {
	return []Scenario{
		{
			Name:     "defaults",
			Validate: true,
		},
		{
			Name: "dev disabled, benchmark disabled, batch 23",
			Parameters: []models.Parameter{
				models.DevDisabled,
				models.BenchmarkDisabled,
				models.MaxBatchSize(23),
			},
		},
		{
			Name: "benchmark disabled, context 23, dev enabled",
			Parameters: []models.Parameter{
				models.BenchmarkDisabled,
				models.MaxContextLength(23),
				models.DevEnabled,
			},
		},
		{
			Name: "batch 23, exceptions enabled, exceptions disabled",
			Parameters: []models.Parameter{
				models.MaxBatchSize(23),
				models.ExceptionsEnabled,
				models.ExceptionsDisabled,
			},
		},
	}
}
