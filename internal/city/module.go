// Package city implements the land-use cellular automaton: the module grid,
// the entropy field, Moore neighbour counting and the rule variants that
// advance a city by one generation.
package city

import (
	"fmt"
	"strings"
)

// ModuleType is the land-use category held by a single cell.
type ModuleType uint8

const (
	Empty ModuleType = iota
	Green
	Living
	Formal
	Informal
	Commerce
	Health

	numModules
)

var moduleNames = [numModules]string{
	Empty:    "empty",
	Green:    "green",
	Living:   "living",
	Formal:   "formal",
	Informal: "informal",
	Commerce: "commerce",
	Health:   "health",
}

// Valid reports whether t is one of the known module types.
func (t ModuleType) Valid() bool { return t < numModules }

// Normalize maps unknown module types to Empty.
func (t ModuleType) Normalize() ModuleType {
	if !t.Valid() {
		return Empty
	}
	return t
}

func (t ModuleType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("module(%d)", uint8(t))
	}
	return moduleNames[t]
}

// ParseModuleType resolves a module name such as "formal" (case-insensitive).
func ParseModuleType(name string) (ModuleType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range moduleNames {
		if n == name {
			return ModuleType(i), nil
		}
	}
	return Empty, fmt.Errorf("unknown module type %q", name)
}

// AllModules lists every module type, Empty first.
func AllModules() []ModuleType {
	out := make([]ModuleType, numModules)
	for i := range out {
		out[i] = ModuleType(i)
	}
	return out
}

// DefaultEntropy is the entropy assigned to Empty and unmapped cells, and the
// value a freshly reset field is filled with.
const DefaultEntropy = 0.30

// Baseline entropy per module type, scaled to [0, 1].
var baselineEntropy = [numModules]float64{
	Empty:    DefaultEntropy,
	Green:    0.30,
	Living:   DefaultEntropy,
	Formal:   0.10,
	Informal: 0.70,
	Commerce: 0.50,
	Health:   0.40,
}

// BaselineEntropy returns the fixed entropy constant for t. Types without a
// dedicated constant (Empty, Living, unknown) get DefaultEntropy.
func BaselineEntropy(t ModuleType) float64 {
	if !t.Valid() {
		return DefaultEntropy
	}
	return baselineEntropy[t]
}
