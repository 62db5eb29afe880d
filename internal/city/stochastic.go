package city

// DefaultSpread is the share of a cell's new entropy pushed onto each
// neighbour during a generation.
const DefaultSpread = 0.1

// Stochastic is the entropy-driven variant: transitions are random draws
// biased by the cell's own entropy and the entropy of its neighbourhood.
type Stochastic struct {
	// Spread overrides DefaultSpread when positive.
	Spread float64
}

func (Stochastic) Name() string { return "entropy" }

func (Stochastic) Palette() []ModuleType {
	return []ModuleType{Green, Formal, Informal, Commerce, Health}
}

func (Stochastic) Entropic() bool { return true }

// SpreadFactor returns the effective neighbour spread.
func (s Stochastic) SpreadFactor() float64 {
	if s.Spread > 0 {
		return s.Spread
	}
	return DefaultSpread
}

func (Stochastic) Next(c Cell, rng Rand) ModuleType {
	influence := c.Neighbors.Influence

	switch c.Type {
	case Formal:
		if ShouldTransition(c.Entropy, BaselineEntropy(Formal), influence, rng) {
			return Informal
		}
	case Informal:
		if ShouldTransition(c.Entropy, BaselineEntropy(Informal), -influence, rng) {
			return Formal
		}
	case Green, Commerce, Health:
		if ShouldTransition(influence, BaselineEntropy(c.Type), 0, rng) {
			return Informal
		}
	}
	return c.Type.Normalize()
}

// ShouldTransition draws from rng and reports whether the draw falls below
// (entropy - threshold + influence) / 2. The probability is not clamped, so
// values >= 1 always succeed and values <= 0 never do; a draw is consumed
// either way.
func ShouldTransition(entropy, threshold, influence float64, rng Rand) bool {
	p := (entropy - threshold + influence) / 2
	return rng.Float64() < p
}

// diffuse builds the entropy field that accompanies next: every cell takes
// the baseline of its new type, then pushes spread times that baseline onto
// each in-bounds neighbour. Contributions are summed, so the result does not
// depend on traversal order.
func (s Stochastic) diffuse(next *Grid) *EntropyField {
	field := &EntropyField{rows: next.rows, cols: next.cols, data: make([]float64, len(next.data))}
	for i, t := range next.data {
		field.data[i] = BaselineEntropy(t)
	}
	spread := s.SpreadFactor()
	for row := 0; row < next.rows; row++ {
		for col := 0; col < next.cols; col++ {
			AdjustEntropy(field, row, col, spread*BaselineEntropy(next.data[next.Index(row, col)]))
		}
	}
	return field
}
