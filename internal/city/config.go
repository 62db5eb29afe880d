package city

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// Params holds the tunables shared by every variant.
type Params struct {
	// Density is the occupancy threshold used by Scatter on reset; zero
	// keeps resets empty.
	Density float64
	// NoiseScale is the frequency of the layout noise.
	NoiseScale float64
	// Spread is the neighbour entropy share for the entropy variant.
	Spread float64
}

// Config controls a city session.
type Config struct {
	Variant string
	Rows    int
	Cols    int
	TPS     int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration for the basic variant.
func DefaultConfig() Config {
	return DefaultConfigFor("basic")
}

// DefaultConfigFor returns the defaults for the named variant. The entropy
// variant runs on a coarser grid at a higher tick rate.
func DefaultConfigFor(variant string) Config {
	c := Config{
		Variant: variant,
		Rows:    56,
		Cols:    80,
		TPS:     30,
		Seed:    1337,
		Params: Params{
			Density:    0,
			NoiseScale: 0.15,
			Spread:     DefaultSpread,
		},
	}
	if variant == (Stochastic{}).Name() {
		c.Rows = 14
		c.Cols = 20
		c.TPS = 60
	}
	return c
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Malformed or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	variant := "basic"
	if v, ok := cfg["variant"]; ok && v != "" {
		variant = v
	}
	c := DefaultConfigFor(variant)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Density = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["spread"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 1 {
			c.Params.Spread = parsed
		}
	}
	return c
}

// Validate reports every problem with the config at once.
func (c Config) Validate() error {
	var err error
	if _, lerr := LookupVariant(c.Variant); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	if c.Rows <= 0 {
		err = multierr.Append(err, fmt.Errorf("rows must be positive, got %d", c.Rows))
	}
	if c.Cols <= 0 {
		err = multierr.Append(err, fmt.Errorf("cols must be positive, got %d", c.Cols))
	}
	if c.TPS <= 0 {
		err = multierr.Append(err, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if c.Params.Density < 0 || c.Params.Density > 1 {
		err = multierr.Append(err, fmt.Errorf("density must be within [0, 1], got %g", c.Params.Density))
	}
	if c.Params.NoiseScale <= 0 {
		err = multierr.Append(err, fmt.Errorf("noise_scale must be positive, got %g", c.Params.NoiseScale))
	}
	if c.Params.Spread <= 0 || c.Params.Spread > 1 {
		err = multierr.Append(err, fmt.Errorf("spread must be within (0, 1], got %g", c.Params.Spread))
	}
	return err
}
