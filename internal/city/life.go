package city

// Life is Conway's Game of Life on a bounded grid, using Living for live
// cells.
type Life struct{}

func (Life) Name() string { return "life" }

func (Life) Palette() []ModuleType { return []ModuleType{Living} }

func (Life) Entropic() bool { return false }

func (Life) Next(c Cell, _ Rand) ModuleType {
	neighbors := c.Neighbors.Count(Living)
	alive := c.Type == Living
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return Living
	}
	return Empty
}
