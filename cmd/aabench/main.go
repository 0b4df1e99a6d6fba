// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command aabench times the lane-parallel merge sort on random data.
//
// Usage:
//
//	aabench [elements] [iterations] [type]
//	aabench 1000000 10 float32 --seed 7
//	aabench --config bench.toml --baseline     # time slices.Sort instead
//
// The type is 0/int32 (default), 1/float32 or 2/float64. A TOML config
// file may set any of elements, iterations, type, seed, baseline and
// verbose; flags and positional arguments override it.
package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/khegeman/floki/hwy/contrib/sort"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := defaultConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "aabench [elements] [iterations] [type]",
		Short: "Benchmark the lane-parallel merge sort",
		Long: "Sort a buffer of random values a number of times, reshuffling it before every\n" +
			"iteration, and report the total and mean time of the sort calls.",
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags, configPath, args)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			sort.SetLogger(logger)
			defer sort.SetLogger(nil)

			return run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "seed for the value generator and shuffles")
	f.BoolVar(&flags.Baseline, "baseline", false, "time slices.Sort instead of the lane-parallel sort")
	f.BoolVarP(&flags.Verbose, "verbose", "v", false, "development logging, including per-iteration timings")
	f.StringVar(&configPath, "config", "", "TOML file with elements, iterations, type, seed, baseline and verbose")
	return cmd
}

// resolveConfig applies, in order: defaults, the config file, changed flags
// and positional arguments.
func resolveConfig(cmd *cobra.Command, flags config, configPath string, args []string) (config, error) {
	cfg := defaultConfig()
	if configPath != "" {
		if err := loadConfig(configPath, &cfg); err != nil {
			return config{}, err
		}
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if f.Changed("baseline") {
		cfg.Baseline = flags.Baseline
	}
	if f.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return config{}, errors.Wrapf(err, "parse elements %q", args[0])
		}
		cfg.Elements = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return config{}, errors.Wrapf(err, "parse iterations %q", args[1])
		}
		cfg.Iterations = n
	}
	if len(args) > 2 {
		cfg.Type = args[2]
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		zc = zap.NewDevelopmentConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}
