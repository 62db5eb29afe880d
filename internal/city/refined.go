package city

// Refined extends Basic with saturation: a cell fully surrounded by
// non-green neighbours is rezoned before any other rule applies.
type Refined struct{}

func (Refined) Name() string { return "refined" }

func (Refined) Palette() []ModuleType {
	return []ModuleType{Green, Living, Commerce, Health}
}

func (Refined) Entropic() bool { return false }

func (Refined) Next(c Cell, _ Rand) ModuleType {
	n := c.Neighbors
	total := n.Total()
	living := n.Count(Living)
	commerce := n.Count(Commerce)
	health := n.Count(Health)

	// Empty neighbours count as non-green too.
	if total-n.Count(Green) >= 8 {
		if living > commerce+health {
			return Living
		}
		return Green
	}

	switch c.Type {
	case Living:
		if commerce > living {
			return Commerce
		}
		return Living
	case Commerce:
		if health > commerce {
			return Health
		}
		return Commerce
	case Health:
		if total-health < 2 {
			return Green
		}
		return Health
	default:
		switch {
		case living == 3:
			return Living
		case living == 1 && commerce == 1:
			return Commerce
		case living == 2 && health == 1:
			return Health
		}
		if c.Type == Green {
			return Green
		}
		return Empty
	}
}
