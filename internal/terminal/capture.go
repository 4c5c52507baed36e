package terminal

import (
	"bytes"
	"sync"
)

// Capture is an in-memory LineWriter that records each overwritten line as a
// frame. It is safe for concurrent use.
type Capture struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	frames []string
	ends   int
}

func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.Write(p)
}

func (c *Capture) OverwriteLine(s string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frames = append(c.frames, s)

	return nil
}

func (c *Capture) EndLine() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ends++

	return nil
}

// Frames returns a copy of the lines passed to OverwriteLine, in order.
func (c *Capture) Frames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.frames...)
}

// Ends returns how many times EndLine was called.
func (c *Capture) Ends() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ends
}

// String returns the text written through Write.
func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.buf.String()
}
