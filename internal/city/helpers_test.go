package city

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var glyphs = map[rune]ModuleType{
	'.': Empty,
	'G': Green,
	'L': Living,
	'F': Formal,
	'I': Informal,
	'C': Commerce,
	'H': Health,
}

// gridFrom builds a grid from one string per row.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		require.Len(t, line, g.Cols(), "row %d has the wrong width", r)
		for c, ch := range line {
			mt, ok := glyphs[ch]
			require.True(t, ok, "unknown glyph %q", ch)
			g.Set(r, c, mt)
		}
	}
	return g
}

// render is the inverse of gridFrom.
func render(g *Grid) []string {
	inv := map[ModuleType]rune{}
	for ch, mt := range glyphs {
		inv[mt] = ch
	}
	out := make([]string, g.Rows())
	for r := range out {
		var b strings.Builder
		for c := 0; c < g.Cols(); c++ {
			b.WriteRune(inv[g.At(r, c)])
		}
		out[r] = b.String()
	}
	return out
}

func summaryOf(counts map[ModuleType]int, influence float64) Summary {
	var s Summary
	for t, n := range counts {
		s.counts[t] = uint8(n)
	}
	s.Influence = influence
	return s
}

// fixedRand always returns the same draw and counts how often it was asked.
type fixedRand struct {
	v     float64
	draws int
}

func (r *fixedRand) Float64() float64 {
	r.draws++
	return r.v
}
