package cli

import (
	"fmt"

	"github.com/nixpig/dance/internal/config"
	"github.com/nixpig/dance/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func RootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "dance",
		Short:         "Emoji that dance, and bears that don't.",
		Example:       "  dance nice\n  dance bear",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logfile, _ := cmd.Flags().GetString("log")
			debug, _ := cmd.Flags().GetBool("debug")
			envFile, _ := cmd.Flags().GetString("env-file")

			logger := zap.NewNop()
			if logfile != "" {
				var err error
				if logger, err = logging.NewLogger(logfile, debug); err != nil {
					return fmt.Errorf("initialise logging: %w", err)
				}
			}

			zap.ReplaceGlobals(logger)

			loaded, err := config.Load(envFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			*cfg = *loaded

			logger.Debug(
				"config loaded",
				zap.String("command", cmd.Name()),
				zap.Bool("bear_dances", cfg.BearDances),
			)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}

	cmd.AddCommand(
		niceCmd(cfg),
		bearCmd(cfg),
		versionCmd(),
	)

	cmd.PersistentFlags().StringP(
		"log",
		"l",
		"",
		"Destination to write logs (default is no logging)",
	)

	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.PersistentFlags().StringP(
		"env-file",
		"",
		config.DefaultEnvFile,
		"Dotenv file to load settings from",
	)

	cmd.CompletionOptions.HiddenDefaultCmd = true

	return cmd
}
