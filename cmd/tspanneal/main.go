// SPDX-License-Identifier: MIT

// Command tspanneal builds a city set, anneals a tour over it and reports
// the initial and best tours.
//
// Usage:
//
//	tspanneal [flags]
//
// Settings come from defaults, tspanneal.yaml (or $TSPANNEAL_CONFIG), .env,
// TSPANNEAL_* environment variables and finally flags. A seed of 0 draws a
// fresh seed from the clock, which is logged so the run can be replayed.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"github.com/katalvlaran/tspanneal/cities"
	"github.com/katalvlaran/tspanneal/config"
	"github.com/katalvlaran/tspanneal/sa"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv); err != nil {
		fmt.Fprintln(os.Stderr, "tspanneal:", err)
		os.Exit(1)
	}
}

// run is main without process globals.
func run(args []string, stdout, stderr io.Writer, env config.Lookup) error {
	dot, err := config.DotEnv(".env")
	if err != nil {
		return err
	}
	lookup := config.Chain(env, dot)

	cfg, path, err := config.Load(lookup)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return err
	}
	if err := parseFlags(cfg, args, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Debug("config loaded", slog.String("path", path))
	}

	now := time.Now().UnixNano()
	if cfg.Seed == 0 {
		cfg.Seed = now
	}
	if cfg.CitySeed == 0 {
		cfg.CitySeed = now ^ 0x5bd1e995
	}

	pts, err := cfg.Points()
	if err != nil {
		return err
	}

	opts := cfg.Annealing()
	opts.Logger = logger
	logger.Info("annealing",
		slog.Int("cities", len(pts)),
		slog.Float64("initial_temperature", opts.InitialTemperature),
		slog.Float64("min_temperature", opts.MinTemperature),
		slog.Float64("cooling_rate", opts.CoolingRate),
		slog.Int("iterations", sa.Iterations(opts)),
		slog.Int64("seed", opts.Seed),
		slog.Int64("city_seed", cfg.CitySeed),
	)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = newBar(stderr, sa.Iterations(opts))
		opts.OnStep = func(sa.Step) { _ = bar.Add(1) }
	}

	a, err := sa.New(pts, opts)
	if err != nil {
		return err
	}
	start := time.Now()
	res := a.Solve()
	if bar != nil {
		_ = bar.Finish()
	}

	logger.Info("done",
		slog.Int("iterations", res.Iterations),
		slog.Int("accepted", res.Accepted),
		slog.Float64("initial_cost", res.InitialCost),
		slog.Float64("cost", res.Cost),
		slog.Duration("elapsed", time.Since(start)),
	)
	fmt.Fprintf(stdout, "best tour %v\ndistance %.6f\n", res.IDs(), res.Cost)

	if cfg.TourOut != "" {
		if err := writeTour(cfg.TourOut, res); err != nil {
			return err
		}
		logger.Info("tour written", slog.String("path", cfg.TourOut))
	}

	return nil
}

// parseFlags overrides cfg with explicitly given flags only, so file and
// environment values survive when a flag is absent.
func parseFlags(cfg *config.Config, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("tspanneal", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&cfg.InitialTemperature, "t0", cfg.InitialTemperature, "initial temperature")
	fs.Float64Var(&cfg.MinTemperature, "tmin", cfg.MinTemperature, "minimum temperature")
	fs.Float64Var(&cfg.CoolingRate, "rate", cfg.CoolingRate, "cooling rate in (0,1)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "annealing seed (0 = from clock)")
	fs.IntVar(&cfg.Cities, "n", cfg.Cities, "number of random cities")
	fs.Float64Var(&cfg.Extent, "extent", cfg.Extent, "side of the square random cities are drawn from")
	fs.Int64Var(&cfg.CitySeed, "city-seed", cfg.CitySeed, "random city seed (0 = from clock)")
	fs.StringVar(&cfg.CitiesFile, "cities", cfg.CitiesFile, "YAML/JSON city file")
	fs.StringVar(&cfg.Fixture, "fixture", cfg.Fixture, "built-in instance: square | fixture16")
	fs.BoolVar(&cfg.AllowSinglePoint, "allow-single", cfg.AllowSinglePoint, "accept a one-city instance")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "debug | info | warn | error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "text | json")
	fs.BoolVar(&cfg.Progress, "progress", cfg.Progress, "show a progress bar")
	fs.StringVar(&cfg.TourOut, "out", cfg.TourOut, "write the best tour as YAML to this path")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return nil
}

// newBar draws on w. The process stderr goes through the ANSI writer so
// color codes render on every terminal.
func newBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == os.Stderr {
		w = ansi.NewAnsiStderr()
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]annealing[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func writeTour(path string, res sa.Result) error {
	return writeFile(path, func(w io.Writer) error {
		return cities.WriteTour(w, res.Tour, res.Cost)
	})
}

// writeFile creates path and fills it with write. On any failure the file
// is removed, so path never holds a truncated document.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create tour file: %w", err)
	}
	if err := write(f); err != nil {
		return errors.Join(err, f.Close(), os.Remove(path))
	}
	if err := f.Close(); err != nil {
		return errors.Join(fmt.Errorf("close tour file: %w", err), os.Remove(path))
	}

	return nil
}
