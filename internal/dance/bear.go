package dance

import (
	"fmt"
	"io"
	"strings"

	"github.com/nixpig/dance/internal/terminal"
	"go.uber.org/zap"
)

// Messages written by ShowBears.
const (
	BearWarning     = "WARN: the bear does not dance well"
	BearDescription = "Bears are here, but they're not great dancers."
)

// BearOpts configures ShowBears.
type BearOpts struct {
	// Dances suppresses the warning.
	Dances bool
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// ShowBears writes the warning to Stderr unless the bear dances, then the
// bears and their description to Stdout.
func ShowBears(opts *BearOpts) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if !opts.Dances {
		warn := terminal.NewTheme(opts.Stderr).Warning.Render(BearWarning)
		if _, err := io.WriteString(opts.Stderr, warn+"\n"); err != nil {
			return fmt.Errorf("write warning: %w", err)
		}
	}

	logger.Debug("bears shown", zap.Bool("warned", !opts.Dances))

	if _, err := io.WriteString(
		opts.Stdout,
		strings.Join(Bears, Separator)+"\n"+BearDescription+"\n",
	); err != nil {
		return fmt.Errorf("write bears: %w", err)
	}

	return nil
}
