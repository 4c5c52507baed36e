package dance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nixpig/dance/internal/dance"
	"github.com/nixpig/dance/internal/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParty(frames int, interval time.Duration) (*dance.Party, *terminal.Capture) {
	out := &terminal.Capture{}

	return &dance.Party{
		Frames:   frames,
		Interval: interval,
		Out:      out,
		Theme:    terminal.NewTheme(out),
	}, out
}

func TestPartyCompletes(t *testing.T) {
	party, out := newParty(6, time.Millisecond)

	outcome, err := party.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dance.Completed, outcome)
	assert.Equal(
		t,
		dance.StartBanner+"\n"+dance.EndBanner+"\n",
		out.String(),
	)
	assert.Equal(t, 1, out.Ends())

	frames := out.Frames()
	require.Len(t, frames, 6)
	for i, f := range frames {
		assert.Equal(t, dance.Frame(i), f)
	}
	assert.Equal(t, frames[0], frames[4])
}

func TestPartyStopsOnCancel(t *testing.T) {
	party, out := newParty(1000, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	outcome, err := party.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, dance.Stopped, outcome)
	assert.Contains(t, out.String(), dance.StartBanner)
	assert.Contains(t, out.String(), dance.StoppedBanner)
	assert.NotContains(t, out.String(), dance.EndBanner)
	assert.Less(t, len(out.Frames()), 1000)
	assert.Equal(t, 1, out.Ends())
}

func TestPartyAlreadyCancelled(t *testing.T) {
	party, out := newParty(30, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := party.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, dance.Stopped, outcome)
	assert.Empty(t, out.Frames())
	assert.Equal(
		t,
		dance.StartBanner+"\n"+dance.StoppedBanner+"\n",
		out.String(),
	)
}

type failingWriter struct {
	terminal.Capture
}

func (f *failingWriter) OverwriteLine(string) error {
	return errors.New("broken pipe")
}

func TestPartyWriteError(t *testing.T) {
	out := &failingWriter{}
	party := &dance.Party{
		Frames:   3,
		Interval: time.Millisecond,
		Out:      out,
		Theme:    terminal.NewTheme(out),
	}

	_, err := party.Run(context.Background())
	assert.EqualError(t, err, "broken pipe")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "completed", dance.Completed.String())
	assert.Equal(t, "stopped", dance.Stopped.String())
	assert.Equal(t, "Outcome(7)", dance.Outcome(7).String())
}
