// SPDX-License-Identifier: MIT

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bootci/bootstrap"
	"github.com/katalvlaran/bootci/cmd/config"
	"github.com/katalvlaran/bootci/log"
	"github.com/katalvlaran/bootci/stats"
)

var errUnsupportedStatistic = errors.New("unsupported statistic")

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:     "run [file]",
		Short:   "Run bootstraps a statistic over numeric data and prints confidence intervals",
		Args:    cobra.MaximumNArgs(1),
		PreRunE: runFlagBinding,
		RunE:    run,
		Example: `
	bootci run data.txt --stat mean --replicates 2000 --seed 42
	cat data.csv | bootci run --column 1 --stat median --type percentile,bca --level 0.9
	bootci run pairs.csv --stat corr --output json
	bootci run --config bootci.yaml --log-level debug`,
	}

	runCmd.Flags().String("input", "", "Input file; empty or - reads stdin. A positional argument takes precedence")
	runCmd.Flags().StringSlice("stat", []string{"mean"}, "Statistics to bootstrap: mean, median, variance, stddev, skewness, kurtosis, mad, iqr, trimean, geomean, harmean, or corr for multi-column data")
	runCmd.Flags().Int("column", -1, "Use only this zero-based input column")
	runCmd.Flags().IntP("replicates", "r", 1000, "Number of bootstrap replicates")
	runCmd.Flags().Int64("seed", 0, "Random seed; when unset every run draws fresh resamples")
	runCmd.Flags().Int("workers", 0, "Goroutines evaluating the statistic; 0 uses GOMAXPROCS")
	runCmd.Flags().Int("chunk-size", 0, "Replicates per random stream; 0 uses the library default")
	runCmd.Flags().StringSlice("type", []string{"basic", "percentile", "normal", "bca"}, "Interval methods: basic, percentile, normal, bca")
	runCmd.Flags().Float64("alpha", 0, "Two-sided significance in (0,1); exclusive with --level")
	runCmd.Flags().Float64("level", 0.95, "Confidence level in (0,1)")
	runCmd.Flags().StringP("output", "o", config.OutputText, "Output format. One of text, json, yaml, toml")

	return runCmd
}

func runFlagBinding(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind run flags: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.ParseRunConfig()
	if err != nil {
		return fmt.Errorf("parsing run config: %w", err)
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	logger := log.Component(newLogger(cmd.ErrOrStderr()), "bootci")

	in, err := openInput(cfg.Input, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := readSample(in, cfg.Column)
	if err != nil {
		return err
	}

	rep, err := bootstrapReport(data, cfg, logger)
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), rep, cfg.Output)
}

// bootstrapReport runs the configured statistics over data and computes
// every requested interval for each of them.
func bootstrapReport(data bootstrap.Sample, cfg *config.RunConfig, logger log.Logger) (*report, error) {
	types, err := cfg.IntervalTypes()
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		if t == bootstrap.Studentized {
			return nil, fmt.Errorf("%w: studentized intervals need per-replicate variances and are not available from the command line", bootstrap.ErrValidation)
		}
	}

	names, fn, err := resolveStatistics(cfg.Statistics, data)
	if err != nil {
		return nil, err
	}

	opts := []bootstrap.Option{bootstrap.WithLogger(logger)}
	if cfg.SeedSet {
		opts = append(opts, bootstrap.WithSeed(cfg.Seed))
	}
	if cfg.Workers > 0 {
		opts = append(opts, bootstrap.WithWorkers(cfg.Workers))
	}
	if cfg.ChunkSize > 0 {
		opts = append(opts, bootstrap.WithChunkSize(cfg.ChunkSize))
	}

	results, err := bootstrap.RunMulti(data, fn, cfg.Replicates, opts...)
	if err != nil {
		return nil, err
	}
	if len(results) != len(names) {
		return nil, fmt.Errorf("%w: %d statistics named, %d computed", errUnsupportedStatistic, len(names), len(results))
	}

	rep := &report{
		Observations: data.Len(),
		Replicates:   cfg.Replicates,
		Level:        cfg.ConfidenceLevel(),
		Estimates:    make([]estimate, len(results)),
	}
	if cfg.SeedSet {
		seed := cfg.Seed
		rep.Seed = &seed
	}

	ciOpts := cfg.CIOptions()
	for i, res := range results {
		ivs, err := intervals(res, types, ciOpts, logger.With(log.Fields{"statistic": names[i]}))
		if err != nil {
			return nil, err
		}
		rep.Estimates[i] = estimate{
			Statistic: names[i],
			Original:  res.Original(),
			Bias:      res.Bias(),
			StdError:  res.StdDev(),
			Intervals: ivs,
		}
	}

	logger.Info("bootstrap finished", log.Fields{
		"observations": data.Len(),
		"replicates":   cfg.Replicates,
		"statistics":   len(results),
	})
	return rep, nil
}

// intervals computes all methods from one snapshot. When some method is
// numerically undefined the others are still reported, each method then
// carrying its own error.
func intervals(res *bootstrap.Result, types []bootstrap.Type, opts []bootstrap.CIOption, logger log.Logger) ([]interval, error) {
	all, err := bootstrap.Intervals(res, types, opts...)
	switch {
	case err == nil:
		out := make([]interval, len(types))
		for i, t := range types {
			out[i] = interval{Method: t.String(), Low: all[t].Low, High: all[t].High}
		}
		return out, nil
	case !errors.Is(err, bootstrap.ErrComputation):
		return nil, err
	}

	out := make([]interval, len(types))
	for i, t := range types {
		out[i] = interval{Method: t.String()}
		iv, err := res.CI(append(opts[:len(opts):len(opts)], bootstrap.WithType(t))...)
		if err != nil {
			if !errors.Is(err, bootstrap.ErrComputation) {
				return nil, err
			}
			logger.Warn(err, "interval undefined", log.Fields{"method": t.String()})
			out[i].Error = err.Error()
			continue
		}
		out[i].Low, out[i].High = iv.Low, iv.High
	}
	return out, nil
}

// resolveStatistics maps statistic names onto one multi-output statistic
// and the display name of each output.
func resolveStatistics(names []string, data bootstrap.Sample) ([]string, bootstrap.MultiStatistic, error) {
	tbl, isTable := data.(bootstrap.Table)

	if len(names) == 1 && names[0] == "corr" {
		if !isTable {
			return nil, nil, fmt.Errorf("%w: corr needs at least two input columns", errUnsupportedStatistic)
		}
		if tbl.Cols() == 2 {
			return []string{"corr"}, stats.Multi(stats.Correlation(0, 1)), nil
		}
		var labels []string
		for i := 0; i < tbl.Cols(); i++ {
			for j := i + 1; j < tbl.Cols(); j++ {
				labels = append(labels, fmt.Sprintf("corr(%d,%d)", i, j))
			}
		}
		return labels, stats.CorrelationMatrix, nil
	}

	if isTable {
		return nil, nil, fmt.Errorf("%w: %v need a single column; select one with --column", errUnsupportedStatistic, names)
	}
	fns := make([]bootstrap.Statistic, len(names))
	for i, name := range names {
		fn, err := stats.ByName(name)
		if err != nil {
			return nil, nil, err
		}
		fns[i] = fn
	}
	return names, stats.Multi(fns...), nil
}
