// Package terminal provides line-oriented writers for animated output and the
// styles used to render banners and warnings.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// LineWriter is an io.Writer that can also replace the contents of the
// current line.
type LineWriter interface {
	io.Writer
	// OverwriteLine replaces the current line with s.
	OverwriteLine(s string) error
	// EndLine terminates a line left open by OverwriteLine. It does nothing
	// if no line is pending.
	EndLine() error
}

// New returns a TTY writer if w is a file attached to a terminal, else a Plain
// writer.
func New(w io.Writer) LineWriter {
	if IsTerminal(w) {
		return NewTTY(w)
	}

	return NewPlain(w)
}

// IsTerminal reports whether w is an *os.File connected to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// TTY overwrites lines in place using a carriage return followed by an
// erase-line control sequence.
type TTY struct {
	w       io.Writer
	pending bool
}

// NewTTY creates a TTY writing to w.
func NewTTY(w io.Writer) *TTY {
	return &TTY{w: w}
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.w.Write(p)
}

func (t *TTY) OverwriteLine(s string) error {
	if _, err := io.WriteString(t.w, "\r"+ansi.EraseEntireLine+s); err != nil {
		return fmt.Errorf("overwrite line: %w", err)
	}

	t.pending = true

	return nil
}

func (t *TTY) EndLine() error {
	if !t.pending {
		return nil
	}

	if _, err := io.WriteString(t.w, "\n"); err != nil {
		return fmt.Errorf("end line: %w", err)
	}

	t.pending = false

	return nil
}

// Plain writes every overwritten line as a line of its own, for output that
// is piped or redirected to a file.
type Plain struct {
	w io.Writer
}

// NewPlain creates a Plain writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Write(b []byte) (int, error) {
	return p.w.Write(b)
}

func (p *Plain) OverwriteLine(s string) error {
	if _, err := io.WriteString(p.w, s+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}

	return nil
}

func (p *Plain) EndLine() error {
	return nil
}
