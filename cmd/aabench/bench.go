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


package main

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/cpuid/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/khegeman/floki/hwy"
	"github.com/khegeman/floki/hwy/contrib/sort"
)

// result summarizes one benchmark run.
type result struct {
	RunID      uuid.UUID
	Type       elementType
	Elements   int
	Iterations int
	Total      time.Duration
	First      string
}

func (r result) mean() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// run prints the header, runs the benchmark and prints the summary line.
func run(w io.Writer, cfg config, logger *zap.Logger) error {
	id := uuid.New()
	engine := "aa-sort"
	if cfg.Baseline {
		engine = "slices.Sort"
	}
	fmt.Fprintf(w, "run %s: engine %s, dispatch %s, cpu %s\n",
		id, engine, hwy.CurrentName(), cpuid.CPU.BrandName)

	res, err := runBench(cfg, logger)
	if err != nil {
		return err
	}
	res.RunID = id

	fmt.Fprintf(w, "Sorted %d %s values %d times in %.3f ms. mean %.3f ms. first value %s\n",
		res.Elements, res.Type, res.Iterations, millis(res.Total), millis(res.mean()), res.First)
	logger.Info("benchmark finished",
		zap.Stringer("run_id", res.RunID),
		zap.Stringer("type", res.Type),
		zap.Int("elements", res.Elements),
		zap.Int("iterations", res.Iterations),
		zap.Duration("total", res.Total),
		zap.Duration("mean", res.mean()),
	)
	return nil
}

func runBench(cfg config, logger *zap.Logger) (result, error) {
	et, err := parseElementType(cfg.Type)
	if err != nil {
		return result{}, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var res result
	switch et {
	case typeFloat32:
		res, err = benchType(cfg, rng, logger, func(r *rand.Rand) float32 { return r.Float32() })
	case typeFloat64:
		res, err = benchType(cfg, rng, logger, func(r *rand.Rand) float64 { return r.Float64() })
	default:
		res, err = benchType(cfg, rng, logger, func(r *rand.Rand) int32 { return int32(r.Uint32()) })
	}
	res.Type = et
	return res, err
}

// benchType fills a buffer once, then reshuffles and sorts it on every
// iteration. Only the sort call is timed.
func benchType[T hwy.Lanes](cfg config, rng *rand.Rand, logger *zap.Logger, gen func(*rand.Rand) T) (result, error) {
	values := make([]T, cfg.Elements)
	for i := range values {
		values[i] = gen(rng)
	}

	var sortFn func([]T) = sort.Sort[T]
	if cfg.Baseline {
		sortFn = func(v []T) { slices.Sort(v) }
	}

	var total time.Duration
	for i := 0; i < cfg.Iterations; i++ {
		rng.Shuffle(len(values), func(a, b int) { values[a], values[b] = values[b], values[a] })
		start := time.Now()
		sortFn(values)
		elapsed := time.Since(start)
		total += elapsed
		logger.Debug("iteration done", zap.Int("iteration", i), zap.Duration("elapsed", elapsed))
	}

	if !sort.IsSorted(values) {
		return result{}, errors.Errorf("output of %d values is not sorted", len(values))
	}

	res := result{
		Elements:   cfg.Elements,
		Iterations: cfg.Iterations,
		Total:      total,
	}
	if len(values) > 0 {
		res.First = fmt.Sprint(values[0])
	}
	return res, nil
}
