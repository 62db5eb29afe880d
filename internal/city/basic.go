package city

// Basic is the first city rule set: green space survives moderate crowding,
// living blocks follow Life-like survival, and services depend on nearby
// housing.
type Basic struct{}

func (Basic) Name() string { return "basic" }

func (Basic) Palette() []ModuleType {
	return []ModuleType{Green, Living, Commerce, Health}
}

func (Basic) Entropic() bool { return false }

func (Basic) Next(c Cell, _ Rand) ModuleType {
	n := c.Neighbors
	living := n.Count(Living)

	switch c.Type {
	case Green:
		if s := n.Total(); s >= 2 && s <= 3 {
			return Green
		}
		return Empty
	case Living:
		if living >= 2 && living <= 3 {
			return Living
		}
		return Green
	case Commerce:
		if living >= 1 {
			return Commerce
		}
		return Empty
	case Health:
		if living >= 2 {
			return Health
		}
		return Empty
	default:
		switch {
		case living == 3:
			return Living
		case n.Count(Commerce) >= 1 && living >= 1:
			return Commerce
		case n.Count(Health) >= 1 && living >= 2:
			return Health
		}
		return Empty
	}
}
