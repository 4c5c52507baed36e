package dance_test

import (
	"strings"
	"testing"

	"github.com/nixpig/dance/internal/dance"
	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	glyphs := []string{"a", "b", "c", "d"}

	scenarios := map[string]struct {
		n    int
		want []string
	}{
		"test zero is original order": {
			n:    0,
			want: []string{"a", "b", "c", "d"},
		},
		"test rotate left by one": {
			n:    1,
			want: []string{"b", "c", "d", "a"},
		},
		"test rotate left by three": {
			n:    3,
			want: []string{"d", "a", "b", "c"},
		},
		"test full cycle is original order": {
			n:    4,
			want: []string{"a", "b", "c", "d"},
		},
		"test wraps past length": {
			n:    6,
			want: []string{"c", "d", "a", "b"},
		},
		"test negative rotates right": {
			n:    -1,
			want: []string{"d", "a", "b", "c"},
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			assert.Equal(t, data.want, dance.Rotate(glyphs, data.n))
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, glyphs, "input not modified")
	assert.Nil(t, dance.Rotate(nil, 2))
}

func TestFrame(t *testing.T) {
	assert.Equal(t, strings.Join(dance.Dancers, "  "), dance.Frame(0))
	assert.Equal(t, "🕺  🪩  🕴️  💃", dance.Frame(1))
	assert.Equal(t, dance.Frame(0), dance.Frame(4))

	for i := 0; i < 30; i++ {
		assert.Equal(
			t,
			strings.Join(dance.Rotate(dance.Dancers, i%len(dance.Dancers)), "  "),
			dance.Frame(i),
		)
	}
}

func TestGlyphs(t *testing.T) {
	assert.Len(t, dance.Dancers, 4)
	assert.Len(t, dance.Bears, 3)
}
