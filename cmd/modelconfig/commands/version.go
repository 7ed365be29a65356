package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-model-config/models"
)

func newVersionCommand(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
			return nil
		},
	}
}
