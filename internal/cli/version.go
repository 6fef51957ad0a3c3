package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gbkit/internal/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the gbkit version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gbkit version %s\n", version.Version)
			return err
		},
	}
}
