package city

// mooreOffsets lists the eight (dRow, dCol) offsets of the Moore neighbourhood.
var mooreOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Summary describes the in-bounds Moore neighbourhood of one cell.
type Summary struct {
	counts [numModules]uint8

	// Influence is the sum of neighbour entropy divided by 8, regardless of
	// how many neighbours were in bounds.
	Influence float64
}

// Count returns how many neighbours hold module t.
func (s Summary) Count(t ModuleType) int {
	if !t.Valid() {
		return 0
	}
	return int(s.counts[t])
}

// Total returns the number of in-bounds neighbours.
func (s Summary) Total() int {
	n := 0
	for _, c := range s.counts {
		n += int(c)
	}
	return n
}

// CountNeighbors summarizes the Moore neighbourhood of (row, col) in g. The
// grid does not wrap: edge and corner cells see fewer than eight neighbours.
// When f is nil the Influence is zero.
func CountNeighbors(g *Grid, f *EntropyField, row, col int) Summary {
	var s Summary
	sum := 0.0
	for _, o := range mooreOffsets {
		nr, nc := row+o[0], col+o[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		s.counts[g.data[g.Index(nr, nc)].Normalize()]++
		if f != nil {
			sum += f.At(nr, nc)
		}
	}
	s.Influence = sum / 8
	return s
}
