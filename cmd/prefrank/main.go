// SPDX-License-Identifier: MIT

// Command prefrank ranks the items of one round file and prints a JSON
// report to stdout.
//
// Usage:
//
//	prefrank -in round.yaml [-config prefrank.yaml] [-variances]
//	         [-damping 0.8] [-epsilon 0.001] [-max-iterations 1000]
//
// Flags override the config file, which overrides PREFRANK_* defaults.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/prefrank/dataset"
	"github.com/katalvlaran/prefrank/internal/config"
	"github.com/katalvlaran/prefrank/internal/logging"
	"github.com/katalvlaran/prefrank/rank"
)

var errUsage = errors.New("prefrank: -in is required")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run parses args, ranks the round and writes the report to stdout.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("prefrank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in         = fs.String("in", "", "round file (.json, .yaml, .yml)")
		configPath = fs.String("config", "", "optional YAML config file")
		variances  = fs.Bool("variances", false, "include pairwise Beta variances")
		damping    = fs.Float64("damping", 0, "fixed damping factor in [0,1], used without clamping; unset keeps the adaptive estimate")
		epsilon    = fs.Float64("epsilon", rank.DefaultEpsilon, "convergence threshold on the L2 step")
		maxIter    = fs.Int("max-iterations", rank.DefaultMaxIterations, "power iteration cap")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		fs.Usage()

		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "damping":
			cfg.Ranking.Damping = damping
		case "epsilon":
			cfg.Ranking.Epsilon = *epsilon
		case "max-iterations":
			cfg.Ranking.MaxIterations = *maxIter
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	lc := cfg.Logging()
	lc.Output = stderr
	log := logging.New(lc)
	ctx = log.WithContext(ctx)

	return rankFile(ctx, cfg, *in, *variances, stdout)
}

// rankFile loads the round at path, ranks it and writes the report.
func rankFile(ctx context.Context, cfg *config.Config, path string, withVariances bool, w io.Writer) error {
	log := zerolog.Ctx(ctx)

	round, err := dataset.Load(path)
	if err != nil {
		return err
	}
	log.Info().
		Str("file", path).
		Int("items", len(round.Items)).
		Int("preferences", len(round.Preferences)).
		Msg("round loaded")

	opts := append(cfg.RankOptions(), rank.WithLogger(*log))
	eng, err := round.Engine(opts...)
	if err != nil {
		return fmt.Errorf("prefrank: %s: %w", path, err)
	}
	res, err := eng.RankDetailed()
	if err != nil {
		return fmt.Errorf("prefrank: %s: %w", path, err)
	}

	return dataset.WriteJSON(w, dataset.NewReport(eng, res, withVariances))
}
