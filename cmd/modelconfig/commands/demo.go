package commands

import "github.com/spf13/cobra"

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Build the example configurations",
		Long: `Build the example configurations and report each outcome.

The last example supplies the exceptions parameter twice and is rejected.`,
		Example: `  # Render the examples as a table
  modelconfig demo

  # Render as JSON
  modelconfig demo -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := setup(cmd)
			if err != nil {
				return err
			}

			return a.RunDemo(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
