package city

import "fmt"

// Census counts how many cells hold each module type.
type Census struct {
	Generation  int
	Counts      [numModules]int
	MeanEntropy float64
}

// TakeCensus tallies g. The mean entropy is only filled in when f is set.
func TakeCensus(g *Grid, f *EntropyField) Census {
	var c Census
	for _, t := range g.data {
		c.Counts[t.Normalize()]++
	}
	if f != nil {
		c.MeanEntropy = f.Mean()
	}
	return c
}

// Count returns the population of module t.
func (c Census) Count(t ModuleType) int {
	if !t.Valid() {
		return 0
	}
	return c.Counts[t]
}

// Occupied returns the number of non-Empty cells.
func (c Census) Occupied() int {
	n := 0
	for t, v := range c.Counts {
		if ModuleType(t) != Empty {
			n += v
		}
	}
	return n
}

func (c Census) String() string {
	return fmt.Sprintf("gen=%d green=%d living=%d formal=%d informal=%d commerce=%d health=%d entropy=%.3f",
		c.Generation, c.Counts[Green], c.Counts[Living], c.Counts[Formal], c.Counts[Informal],
		c.Counts[Commerce], c.Counts[Health], c.MeanEntropy)
}
