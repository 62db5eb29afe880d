package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urban-ca/internal/core"
)

func TestShouldTransitionDoesNotClampProbability(t *testing.T) {
	high := &fixedRand{v: 0.999999}
	assert.True(t, ShouldTransition(3, 0, 0, high), "p >= 1 always succeeds")

	low := &fixedRand{v: 0}
	assert.False(t, ShouldTransition(0, 1, -1, low), "p <= 0 never succeeds")

	assert.Equal(t, 1, high.draws)
	assert.Equal(t, 1, low.draws)
}

func TestShouldTransitionThreshold(t *testing.T) {
	// p = (0.9 - 0.3 + 0.2) / 2 = 0.4
	assert.True(t, ShouldTransition(0.9, 0.3, 0.2, &fixedRand{v: 0.39}))
	assert.False(t, ShouldTransition(0.9, 0.3, 0.2, &fixedRand{v: 0.41}))
}

func TestStochasticTransitions(t *testing.T) {
	tests := []struct {
		name      string
		cur       ModuleType
		entropy   float64
		influence float64
		draw      float64
		want      ModuleType
	}{
		// p = (1 - 0.1 + 0.5) / 2 = 0.7
		{"formal degrades", Formal, 1, 0.5, 0.69, Informal},
		{"formal holds", Formal, 1, 0.5, 0.71, Formal},
		// p = (1 - 0.7 - 0.2) / 2 = 0.05
		{"informal formalizes", Informal, 1, 0.2, 0.04, Formal},
		{"informal holds", Informal, 1, 0.2, 0.06, Informal},
		// p = (0.9 - 0.3) / 2 = 0.3, own entropy ignored
		{"green overrun", Green, 0, 0.9, 0.29, Informal},
		{"green holds", Green, 1, 0.9, 0.31, Green},
		// p = (0.9 - 0.5) / 2 = 0.2
		{"commerce degrades", Commerce, 0, 0.9, 0.19, Informal},
		{"commerce holds", Commerce, 0, 0.9, 0.21, Commerce},
		// p = (0.9 - 0.4) / 2 = 0.25
		{"health degrades", Health, 0, 0.9, 0.24, Informal},
		{"health holds", Health, 0, 0.9, 0.26, Health},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &fixedRand{v: tt.draw}
			c := Cell{Type: tt.cur, Entropy: tt.entropy, Neighbors: summaryOf(nil, tt.influence)}
			assert.Equal(t, tt.want, Stochastic{}.Next(c, rng))
			assert.Equal(t, 1, rng.draws)
		})
	}
}

func TestStochasticEmptyNeverTransitions(t *testing.T) {
	g := NewGrid(4, 4)
	f := NewEntropyField(4, 4)
	f.Fill(1)
	rng := &fixedRand{v: 0}

	next, _ := Step(g, f, Stochastic{}, rng)

	assert.Equal(t, []string{"....", "....", "....", "...."}, render(next))
	assert.Zero(t, rng.draws, "empty cells consume no draws")
}

func TestStochasticDiffusion(t *testing.T) {
	g := gridFrom(t,
		"FFF",
		"FFF",
		"FFF",
	)
	f := NewEntropyField(3, 3)

	next, field := Step(g, f, Stochastic{}, &fixedRand{v: 0.99})

	require.Equal(t, render(g), render(next))
	// Every cell keeps the formal baseline and gains 0.01 per formal neighbour.
	assert.InDelta(t, 0.18, field.At(1, 1), 1e-9)
	assert.InDelta(t, 0.13, field.At(0, 0), 1e-9)
	assert.InDelta(t, 0.15, field.At(0, 1), 1e-9)
	assert.InDelta(t, DefaultEntropy, f.At(1, 1), 1e-12, "input field untouched")
}

func TestStochasticDiffusionClampsAndUsesNewType(t *testing.T) {
	g := gridFrom(t,
		"III",
		"I.I",
		"III",
	)

	next, field := Step(g, nil, Stochastic{Spread: 0.5}, &fixedRand{v: 0.99})

	require.Equal(t, Empty, next.At(1, 1))
	// 0.3 + 8 * 0.5 * 0.7 would exceed 1.
	assert.Equal(t, 1.0, field.At(1, 1))
	for _, v := range field.Values() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestStochasticEntropyStaysBounded(t *testing.T) {
	g := NewGrid(16, 16)
	Scatter(g, Stochastic{}, 11, 0.8, 0.25)
	f := NewEntropyField(16, 16)
	rng := core.NewRNG(11)

	for i := 0; i < 50; i++ {
		g, f = Step(g, f, Stochastic{}, rng)
		for j, v := range f.Values() {
			require.True(t, v >= 0 && v <= 1, "step %d cell %d entropy %f", i, j, v)
		}
	}
}

func TestStochasticReproducible(t *testing.T) {
	run := func() (*Grid, *EntropyField) {
		g := NewGrid(10, 12)
		Scatter(g, Stochastic{}, 21, 0.7, 0.3)
		f := NewEntropyField(10, 12)
		rng := core.NewRNG(99)
		for i := 0; i < 25; i++ {
			g, f = Step(g, f, Stochastic{}, rng)
		}
		return g, f
	}

	g1, f1 := run()
	g2, f2 := run()

	assert.True(t, g1.Equal(g2))
	assert.Equal(t, f1.Values(), f2.Values())
}

func TestStochasticSpreadFactor(t *testing.T) {
	assert.Equal(t, DefaultSpread, Stochastic{}.SpreadFactor())
	assert.Equal(t, 0.25, Stochastic{Spread: 0.25}.SpreadFactor())
}
