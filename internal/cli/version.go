package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/nixpig/dance/internal/cli.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Show version",
		Example: "  dance version",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := cmd.OutOrStdout().Write(fmt.Appendf(
				nil,
				"dance\nVersion: %s\nCommit: %s\nBuild: %s\n",
				Version, Commit, BuildDate,
			)); err != nil {
				return fmt.Errorf("failed to print version: %w", err)
			}

			return nil
		},
	}

	return cmd
}
