package city

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Scatter paints a noise-driven district layout over g using the variant's
// palette. A cell is occupied when its normalized occupancy noise falls
// below density, so 0 leaves the grid untouched and 1 fills it. The module
// chosen for an occupied cell follows a second noise layer so that districts
// form contiguous patches. scale controls the patch size (larger = smaller
// patches). The same seed always produces the same layout.
func Scatter(g *Grid, v Variant, seed int64, density, scale float64) {
	palette := v.Palette()
	if len(palette) == 0 || density <= 0 {
		return
	}
	if scale <= 0 {
		scale = 0.15
	}

	occupancy := opensimplex.NewNormalized(seed)
	zoning := opensimplex.NewNormalized(seed + 1)

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			x, y := float64(col), float64(row)
			if octaveNoise(occupancy, x, y, 3, scale, 0.5) >= density {
				continue
			}
			z := octaveNoise(zoning, x, y, 2, scale/2, 0.5)
			idx := int(z * float64(len(palette)))
			if idx >= len(palette) {
				idx = len(palette) - 1
			}
			g.data[g.Index(row, col)] = palette[idx]
		}
	}
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
