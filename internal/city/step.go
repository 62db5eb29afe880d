package city

// Step advances the city by one generation. Every cell is evaluated against
// the frozen inputs, which are never modified; a fresh grid (and, for
// entropic variants, a fresh field) is returned.
//
// The field may be nil for deterministic variants, in which case nil is
// returned alongside the grid. An entropic variant given a nil field starts
// from a DefaultEntropy field. rng may be nil for deterministic variants
// only. Cells are visited in row-major order, which fixes the order rng
// draws are consumed in.
func Step(g *Grid, f *EntropyField, v Variant, rng Rand) (*Grid, *EntropyField) {
	if v.Entropic() && f == nil {
		f = NewEntropyField(g.rows, g.cols)
	}

	next := &Grid{rows: g.rows, cols: g.cols, data: make([]ModuleType, len(g.data))}
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := g.Index(row, col)
			c := Cell{
				Type:      g.data[idx],
				Neighbors: CountNeighbors(g, f, row, col),
			}
			if f != nil {
				c.Entropy = f.At(row, col)
			}
			next.data[idx] = v.Next(c, rng).Normalize()
		}
	}

	if !v.Entropic() {
		if f != nil {
			return next, f.Clone()
		}
		return next, nil
	}
	if d, ok := v.(diffuser); ok {
		return next, d.diffuse(next)
	}
	return next, Stochastic{}.diffuse(next)
}

type diffuser interface {
	diffuse(next *Grid) *EntropyField
}
