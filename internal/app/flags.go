package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Config represents the command-line parameters for the headless runner.
type Config struct {
	Sim      string
	Rows     int
	Cols     int
	TPS      int
	Seed     int64
	Steps    int
	Every    int
	Density  float64
	Spread   float64
	Realtime bool
	LogLevel string
	Places   Placements
}

// NewConfig returns a Config populated with sensible defaults. Zero
// dimensions, TPS and spread defer to the selected variant's defaults.
func NewConfig() *Config {
	return &Config{Sim: "basic", Seed: 42, Steps: 100, Every: 10, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule variant to run")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 = variant default)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (0 = variant default)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second in realtime mode (0 = variant default)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for layout and random draws")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to simulate")
	fs.IntVar(&c.Every, "every", c.Every, "report a census every N generations (0 = only at the end)")
	fs.Float64Var(&c.Density, "density", c.Density, "initial scatter density in [0, 1]")
	fs.Float64Var(&c.Spread, "spread", c.Spread, "entropy neighbour spread (0 = default)")
	fs.BoolVar(&c.Realtime, "realtime", c.Realtime, "pace generations at the configured TPS")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.Var(&c.Places, "place", "paint a cell before running, as row,col,module (repeatable)")
}

// SimConfig converts the flags into the key/value form understood by the
// simulation factories. Unset values are omitted so variant defaults apply.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Rows > 0 {
		m["rows"] = strconv.Itoa(c.Rows)
	}
	if c.Cols > 0 {
		m["cols"] = strconv.Itoa(c.Cols)
	}
	if c.TPS > 0 {
		m["tps"] = strconv.Itoa(c.TPS)
	}
	if c.Density > 0 {
		m["density"] = strconv.FormatFloat(c.Density, 'f', -1, 64)
	}
	if c.Spread > 0 {
		m["spread"] = strconv.FormatFloat(c.Spread, 'f', -1, 64)
	}
	return m
}

// Placement is a single user edit applied before the run starts.
type Placement struct {
	Row, Col int
	Module   string
}

// Placements collects repeated -place flags.
type Placements []Placement

func (p *Placements) String() string {
	parts := make([]string, len(*p))
	for i, pl := range *p {
		parts[i] = fmt.Sprintf("%d,%d,%s", pl.Row, pl.Col, pl.Module)
	}
	return strings.Join(parts, " ")
}

// Set parses a row,col,module triple.
func (p *Placements) Set(value string) error {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return fmt.Errorf("placement %q: want row,col,module", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("placement %q: row: %w", value, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("placement %q: col: %w", value, err)
	}
	*p = append(*p, Placement{Row: row, Col: col, Module: strings.TrimSpace(parts[2])})
	return nil
}
