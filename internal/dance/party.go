package dance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nixpig/dance/internal/terminal"
	"go.uber.org/zap"
)

// Banners printed around the party.
const (
	StartBanner   = "Dance party started! Press Ctrl+C to stop"
	EndBanner     = "Dance party ended!"
	StoppedBanner = "Dance party stopped!"
)

// Outcome is how a party finished.
type Outcome int

const (
	// Completed means every frame was shown.
	Completed Outcome = iota
	// Stopped means the party was cancelled before the last frame.
	Stopped
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Party animates the dancers on a terminal line.
type Party struct {
	Frames   int
	Interval time.Duration
	Out      terminal.LineWriter
	Theme    terminal.Theme
	Logger   *zap.Logger
}

// Run shows the party until all frames have been shown or ctx is done.
// Cancellation is not an error: Run returns Stopped and a nil error.
func (p *Party) Run(ctx context.Context) (Outcome, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := p.println(StartBanner); err != nil {
		return Completed, err
	}

	logger.Info(
		"party started",
		zap.Int("frames", p.Frames),
		zap.Duration("interval", p.Interval),
	)

	timer := time.NewTimer(p.Interval)
	defer timer.Stop()

	for i := 0; i < p.Frames; i++ {
		if ctx.Err() != nil {
			return p.stop(logger, i)
		}

		if err := p.Out.OverwriteLine(Frame(i)); err != nil {
			return Completed, err
		}

		logger.Debug("frame", zap.Int("index", i))

		timer.Reset(p.Interval)

		select {
		case <-ctx.Done():
			return p.stop(logger, i+1)
		case <-timer.C:
		}
	}

	if err := p.Out.EndLine(); err != nil {
		return Completed, err
	}

	if err := p.println(EndBanner); err != nil {
		return Completed, err
	}

	logger.Info("party ended", zap.Int("shown", p.Frames))

	return Completed, nil
}

func (p *Party) stop(logger *zap.Logger, shown int) (Outcome, error) {
	if err := p.Out.EndLine(); err != nil {
		return Stopped, err
	}

	if err := p.println(StoppedBanner); err != nil {
		return Stopped, err
	}

	logger.Info("party stopped", zap.Int("shown", shown))

	return Stopped, nil
}

func (p *Party) println(s string) error {
	if _, err := io.WriteString(p.Out, p.Theme.Banner.Render(s)+"\n"); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}

	return nil
}
