package city

import (
	"fmt"
	"sort"
	"strings"
)

// Rand is the random stream consumed by stochastic variants.
type Rand interface {
	Float64() float64
}

// Cell is the frozen view of one cell handed to a Variant.
type Cell struct {
	Type      ModuleType
	Entropy   float64
	Neighbors Summary
}

// Variant is a stateless transition policy.
type Variant interface {
	// Name identifies the variant, e.g. "zonal".
	Name() string
	// Palette lists the non-Empty module types the variant works with.
	Palette() []ModuleType
	// Entropic reports whether the variant reads and writes an EntropyField.
	Entropic() bool
	// Next computes the cell's type for the next generation. Deterministic
	// variants ignore rng.
	Next(c Cell, rng Rand) ModuleType
}

var variants = indexVariants(Basic{}, Refined{}, Zonal{}, Stochastic{}, Life{})

func indexVariants(vs ...Variant) map[string]Variant {
	m := make(map[string]Variant, len(vs))
	for _, v := range vs {
		m[v.Name()] = v
	}
	return m
}

// LookupVariant returns the variant registered under name.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists the registered variant names in lexical order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for n := range variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// InPalette reports whether t may be painted on a grid driven by v. Empty is
// never paintable; cells only return to Empty through the rules or a reset.
func InPalette(v Variant, t ModuleType) bool {
	for _, p := range v.Palette() {
		if p == t {
			return true
		}
	}
	return false
}
