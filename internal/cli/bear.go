package cli

import (
	"github.com/nixpig/dance/internal/config"
	"github.com/nixpig/dance/internal/dance"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func bearCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bear",
		Short:   "Show bears (they don't dance well)",
		Example: "  dance bear",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dance.ShowBears(&dance.BearOpts{
				Dances: cfg.BearDances,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
				Logger: zap.L(),
			})
		},
	}

	return cmd
}
