package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seedmap/almanac"
	"github.com/katalvlaran/seedmap/pipeline"
)

// newRootCmd wires flags, config file and the run step.
func newRootCmd() *cobra.Command {
	var (
		configPath string
		flagCfg    = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "seedmap [input-file]",
		Short: "Find the lowest location reachable from an almanac's seeds",
		Long: `seedmap gap-fills each of the seven almanac stages into a total
piecewise function, composes them into a single seed-to-location function and
takes the minimum over every seed range without enumerating seeds.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := DefaultConfig()
			if configPath != "" {
				loaded, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			overrideFromFlags(cmd, &cfg, flagCfg)
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML config file")
	f.StringVar(&flagCfg.Input, "input", flagCfg.Input, "almanac file (the positional argument wins)")
	f.StringVarP(&flagCfg.Mode, "mode", "m", flagCfg.Mode, `"ranges" (start/length pairs) or "seeds" (single values)`)
	f.IntVarP(&flagCfg.Workers, "workers", "w", flagCfg.Workers, "concurrent seed-range queries")
	f.BoolVar(&flagCfg.Coalesce, "coalesce", flagCfg.Coalesce, "merge equal-shift neighbours after each composition")
	f.BoolVarP(&flagCfg.Verbose, "verbose", "v", flagCfg.Verbose, "debug logging on stderr")
	f.BoolVarP(&flagCfg.Timing, "timing", "t", flagCfg.Timing, "print elapsed computation time")

	return cmd
}

// overrideFromFlags copies every flag the user actually set onto cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	set := cmd.Flags().Changed
	if set("input") {
		cfg.Input = flags.Input
	}
	if set("mode") {
		cfg.Mode = flags.Mode
	}
	if set("workers") {
		cfg.Workers = flags.Workers
	}
	if set("coalesce") {
		cfg.Coalesce = flags.Coalesce
	}
	if set("verbose") {
		cfg.Verbose = flags.Verbose
	}
	if set("timing") {
		cfg.Timing = flags.Timing
	}
}

// run parses the almanac, builds the composed function and prints the answer.
// Nothing is written to out unless every step succeeded.
func run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	a, err := almanac.ParseFile(cfg.Input)
	if err != nil {
		return err
	}

	start := time.Now()
	opts := []pipeline.Option{pipeline.WithWorkers(cfg.Workers), pipeline.WithLogger(logger)}
	if cfg.Coalesce {
		opts = append(opts, pipeline.WithCoalesce())
	}
	f, err := pipeline.Build(a, opts...)
	if err != nil {
		return err
	}
	logger.Debug("pipeline built", slog.Int("intervals", f.Len()))

	var lowest int64
	switch cfg.Mode {
	case ModeSeeds:
		lowest, err = pipeline.LowestSeedLocation(f, a.Seeds)
	default:
		ranges, rerr := a.SeedRanges()
		if rerr != nil {
			return rerr
		}
		lowest, err = pipeline.LowestLocation(ctx, f, ranges, opts...)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintf(out, "Location: %d\n", lowest)
	if cfg.Timing {
		fmt.Fprintf(out, "Elapsed: %v\n", elapsed)
	}

	return nil
}
