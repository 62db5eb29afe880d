// Command citysim runs a land-use cellular automaton headlessly and logs a
// census of the city as it evolves.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"

	"urban-ca/internal/app"
	"urban-ca/internal/city"
	"urban-ca/internal/core"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	list := flag.Bool("list", false, "list available variants and exit")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(core.Names(), "\n"))
		return
	}

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	factory, err := lookupSim(cfg.Sim)
	if err != nil {
		return err
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		return err
	}
	session, ok := sim.(*city.Session)
	if !ok {
		return fmt.Errorf("sim %q is not a city session", cfg.Sim)
	}

	for _, p := range cfg.Places {
		mt, err := city.ParseModuleType(p.Module)
		if err != nil {
			return fmt.Errorf("place %d,%d: %w", p.Row, p.Col, err)
		}
		if !session.Place(p.Row, p.Col, mt) {
			slog.Warn("placement ignored", "row", p.Row, "col", p.Col, "module", mt.String())
		}
	}

	tps := session.Config().TPS

	size := session.Size()
	slog.Info("session created",
		"variant", session.Name(),
		"rows", size.H,
		"cols", size.W,
		"seed", cfg.Seed,
		"tps", tps,
		"steps", cfg.Steps,
	)
	logCensus(session.Census())

	runner := app.NewRunner(session, tps)
	runner.OnTick = func(gen int) {
		if cfg.Every > 0 && gen%cfg.Every == 0 {
			logCensus(session.Census())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = runner.Run(ctx, cfg.Steps, cfg.Realtime)
	if errors.Is(err, context.Canceled) {
		slog.Info("interrupted", "generation", session.Generation())
		err = nil
	}
	final := session.Census()
	logCensus(final)
	slog.Info("finished",
		"generations", humanize.Comma(int64(final.Generation)),
		"occupied", fmt.Sprintf("%s of %s cells", humanize.Comma(int64(final.Occupied())), humanize.Comma(int64(size.W*size.H))),
	)
	return err
}

func logCensus(c city.Census) {
	attrs := []any{"generation", c.Generation}
	for _, mt := range city.AllModules() {
		if mt == city.Empty || c.Count(mt) == 0 {
			continue
		}
		attrs = append(attrs, mt.String(), humanize.Comma(int64(c.Count(mt))))
	}
	if c.MeanEntropy > 0 {
		attrs = append(attrs, "entropy", fmt.Sprintf("%.3f", c.MeanEntropy))
	}
	slog.Info("census", attrs...)
}

// lookupSim finds a registered factory, ignoring case and surrounding space.
func lookupSim(name string) (core.Factory, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	factory, ok := core.Sims()[key]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", name, strings.Join(core.Names(), ", "))
	}
	return factory, nil
}
