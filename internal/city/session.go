package city

import (
	"fmt"
	"log/slog"
	"strconv"

	"urban-ca/internal/core"
)

// Session owns the live state of one simulation: the grid, the entropy
// field (entropy variant only), the selected variant and its RNG. It is not
// safe for concurrent use; edits and steps must be serialized by the caller.
type Session struct {
	cfg     Config
	variant Variant

	grid  *Grid
	field *EntropyField
	rng   *core.RNG
	gen   int

	display []uint8
}

// NewSession validates cfg and returns a session reset with cfg.Seed.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("city config: %w", err)
	}
	v, err := LookupVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if _, ok := v.(Stochastic); ok {
		v = Stochastic{Spread: cfg.Params.Spread}
	}

	s := &Session{
		cfg:     cfg,
		variant: v,
		grid:    NewGrid(cfg.Rows, cfg.Cols),
	}
	if v.Entropic() {
		s.field = NewEntropyField(cfg.Rows, cfg.Cols)
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the variant name.
func (s *Session) Name() string { return s.variant.Name() }

// Size reports the grid dimensions.
func (s *Session) Size() core.Size { return core.Size{W: s.grid.Cols(), H: s.grid.Rows()} }

// Cells exposes the module types as raw bytes in row-major order. The slice
// is reused between calls.
func (s *Session) Cells() []uint8 {
	s.display = s.grid.AppendCells(s.display[:0])
	return s.display
}

// Config returns the configuration the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Grid returns the current grid. It is replaced, not mutated, by Step.
func (s *Session) Grid() *Grid { return s.grid }

// Field returns the current entropy field, or nil for deterministic variants.
func (s *Session) Field() *EntropyField { return s.field }

// Variant returns the rule variant driving the session.
func (s *Session) Variant() Variant { return s.variant }

// Generation returns the number of steps since the last reset.
func (s *Session) Generation() int { return s.gen }

// Reset clears the city, reseeds the RNG and, when a density is configured,
// scatters a fresh layout. A zero seed falls back to the configured seed.
func (s *Session) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	ResetGrid(s.grid, s.field)
	s.rng = core.NewRNG(effective)
	s.gen = 0
	if s.cfg.Params.Density > 0 {
		Scatter(s.grid, s.variant, effective, s.cfg.Params.Density, s.cfg.Params.NoiseScale)
	}
	slog.Debug("city reset", "variant", s.variant.Name(), "seed", effective, "occupied", s.Census().Occupied())
}

// Step advances the city by one generation.
func (s *Session) Step() {
	s.grid, s.field = Step(s.grid, s.field, s.variant, s.rng)
	s.gen++
}

// Place paints t at (row, col) and, for the entropy variant, raises the
// entropy of the surrounding cells by t's baseline. It reports false when
// the cell is out of bounds or t is not part of the variant's palette.
func (s *Session) Place(row, col int, t ModuleType) bool {
	if !s.grid.InBounds(row, col) || !InPalette(s.variant, t) {
		return false
	}
	SetCell(s.grid, row, col, t)
	if s.field != nil {
		AdjustEntropy(s.field, row, col, BaselineEntropy(t))
	}
	return true
}

// Census tallies the current state.
func (s *Session) Census() Census {
	c := TakeCensus(s.grid, s.field)
	c.Generation = s.gen
	return c
}

// Parameters describes the session settings.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "City",
			Params: []core.Parameter{
				{Key: "variant", Label: "Variant", Type: core.ParamTypeString, Value: s.variant.Name()},
				intParam("rows", "Rows", s.cfg.Rows),
				intParam("cols", "Cols", s.cfg.Cols),
				intParam("tps", "Ticks per second", s.cfg.TPS),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.Seed, 10)},
			},
		},
		{
			Name: "Layout",
			Params: []core.Parameter{
				floatParam("density", "Scatter density", s.cfg.Params.Density),
				floatParam("noise_scale", "Noise scale", s.cfg.Params.NoiseScale),
			},
		},
		{
			Name:    "Entropy",
			Summary: "only used by the entropy variant",
			Params: []core.Parameter{
				floatParam("spread", "Neighbour spread", s.cfg.Params.Spread),
				floatParam("default_entropy", "Default entropy", DefaultEntropy),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func init() {
	for _, name := range VariantNames() {
		name := name
		core.Register(name, func(cfg map[string]string) (core.Sim, error) {
			merged := map[string]string{}
			for k, v := range cfg {
				merged[k] = v
			}
			merged["variant"] = name
			s, err := NewSession(FromMap(merged))
			if err != nil {
				return nil, err
			}
			return s, nil
		})
	}
}
