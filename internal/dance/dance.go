// Package dance renders the emoji dance party and the bear display.
package dance

import "strings"

// Separator is placed between glyphs on a line.
const Separator = "  "

var (
	// Dancers are the glyphs rotated through on each frame of the party.
	Dancers = []string{"💃", "🕺", "🪩", "🕴️"}
	// Bears are the glyphs shown by the bear display.
	Bears = []string{"🐻", "🐻‍❄️", "🧸"}
)

// Rotate returns a copy of glyphs rotated left by n positions. Negative n
// rotates right.
func Rotate(glyphs []string, n int) []string {
	if len(glyphs) == 0 {
		return nil
	}

	n %= len(glyphs)
	if n < 0 {
		n += len(glyphs)
	}

	rotated := make([]string, 0, len(glyphs))
	rotated = append(rotated, glyphs[n:]...)

	return append(rotated, glyphs[:n]...)
}

// Frame returns the dance line for frame i.
func Frame(i int) string {
	return strings.Join(Rotate(Dancers, i), Separator)
}
