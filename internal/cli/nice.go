package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/nixpig/dance/internal/config"
	"github.com/nixpig/dance/internal/dance"
	"github.com/nixpig/dance/internal/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

func niceCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nice",
		Short:   "Show dancing emoji figures",
		Example: "  dance nice",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ResolveParty(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			zap.L().Debug(
				"party config resolved",
				zap.Int("frames", cfg.Frames),
				zap.Duration("frame_interval", cfg.FrameInterval),
			)

			ctx, cancel := signal.NotifyContext(
				cmd.Context(),
				unix.SIGTERM,
				os.Interrupt,
			)
			defer cancel()

			party := &dance.Party{
				Frames:   cfg.Frames,
				Interval: cfg.FrameInterval,
				Out:      terminal.New(cmd.OutOrStdout()),
				Theme:    terminal.NewTheme(cmd.OutOrStdout()),
				Logger:   zap.L(),
			}

			if _, err := party.Run(ctx); err != nil {
				return fmt.Errorf("failed to run dance party: %w", err)
			}

			return nil
		},
	}

	return cmd
}
