// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-obscured/internal/config"
	"github.com/MKhiriev/go-obscured/internal/logger"
	"github.com/MKhiriev/go-obscured/keysource"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of a [Runner.Run].
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Results []Result
}

// Ops returns the number of steps completed across all workers.
func (r *Report) Ops() int {
	var total int
	for _, res := range r.Results {
		total += res.Ops
	}
	return total
}

// Runner runs every configured scenario with cfg.Workers concurrent workers.
type Runner struct {
	cfg    config.Bench
	src    keysource.Source
	logger *logger.Logger
	ids    idGenerator
}

func NewRunner(cfg config.Bench, src keysource.Source, log *logger.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		src:    src,
		logger: log,
		ids:    NewRunIDGenerator(),
	}
}

// Run starts all workers and waits for them. The first failing worker
// cancels the others and its error is returned together with the results
// collected so far.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:   r.ids.Generate(),
		Started: time.Now(),
	}

	log := r.logger.WithField("run_id", report.RunID)
	ctx = log.WithContext(ctx)

	if r.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.Timeout)
		defer cancel()
	}

	scenarios := make([]Scenario, 0, len(r.cfg.Kinds)*r.cfg.Workers)
	for _, kind := range r.cfg.Kinds {
		for range r.cfg.Workers {
			sc, err := newScenario(kind, r.src, r.cfg)
			if err != nil {
				return report, err
			}
			scenarios = append(scenarios, sc)
		}
	}

	log.Info().
		Strs("kinds", r.cfg.Kinds).
		Int("workers", r.cfg.Workers).
		Int("iterations", r.cfg.Iterations).
		Msg("starting benchmark run")

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for n, sc := range scenarios {
		worker := n % r.cfg.Workers
		g.Go(func() error {
			res, err := sc.Run(gctx, r.cfg.Iterations)
			res.Worker = worker

			mu.Lock()
			report.Results = append(report.Results, res)
			mu.Unlock()

			if err != nil {
				return fmt.Errorf("%s worker %d: %w", sc.Name(), worker, err)
			}

			logger.FromContext(gctx).Debug().
				Str("scenario", res.Scenario).
				Int("worker", worker).
				Int("ops", res.Ops).
				Dur("elapsed", res.Elapsed).
				Msg("worker finished")
			return nil
		})
	}

	err := g.Wait()
	report.Elapsed = time.Since(report.Started)
	slices.SortFunc(report.Results, func(a, b Result) int {
		return cmp.Or(cmp.Compare(a.Scenario, b.Scenario), cmp.Compare(a.Worker, b.Worker))
	})

	if err != nil {
		log.Err(err).Int("ops", report.Ops()).Msg("benchmark run failed")
		return report, err
	}

	log.Info().
		Int("ops", report.Ops()).
		Dur("elapsed", report.Elapsed).
		Msg("benchmark run finished")
	return report, nil
}
