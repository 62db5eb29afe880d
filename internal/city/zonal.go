package city

// Zonal models the tension between formal and informal settlement, with
// green space and services caught in between.
type Zonal struct{}

func (Zonal) Name() string { return "zonal" }

func (Zonal) Palette() []ModuleType {
	return []ModuleType{Green, Formal, Informal, Commerce, Health}
}

func (Zonal) Entropic() bool { return false }

func (Zonal) Next(c Cell, _ Rand) ModuleType {
	n := c.Neighbors
	formal := n.Count(Formal)
	informal := n.Count(Informal)
	green := n.Count(Green)

	switch c.Type {
	case Formal:
		if informal == 0 && green >= 2 {
			return Formal
		}
		return Green
	case Informal:
		if formal == 0 || green >= 1 {
			return Informal
		}
		return Formal
	case Green:
		if informal > formal {
			return Informal
		}
		return Green
	case Commerce, Health:
		if formal > informal {
			return c.Type
		}
		return Informal
	default:
		switch {
		case informal > formal:
			return Informal
		case formal >= 3:
			return Formal
		}
		return Empty
	}
}
