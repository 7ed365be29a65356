package commands

import "github.com/spf13/cobra"

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Compose, validate and print a model configuration",
		Long: `Compose a model configuration from the defaults, MODEL_* environment
variables, command-line flags and an optional config file, then validate it.

Prompt and generation lengths left "enabled" are derived as half of the
context length, rounded up.`,
		Example: `  # Override the context length
  modelconfig build --max-context-length 2048

  # Use a YAML file and print YAML
  modelconfig build -c model.yaml -o yaml

  # Toggles accept a bare flag
  MODEL_GPU_COUNT=2 modelconfig build --dev`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			return a.RunBuild(cmd.Context(), cmd.OutOrStdout(), cfg.ModelLayers...)
		},
	}
}
