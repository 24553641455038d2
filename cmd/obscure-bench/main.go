// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-obscured/internal/bench"
	"github.com/MKhiriev/go-obscured/internal/config"
	"github.com/MKhiriev/go-obscured/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("obscure-bench")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	src, err := bench.NewKeySource(cfg.KeySource)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key source")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := bench.NewRunner(cfg.Bench, src, log).Run(ctx)
	for _, res := range report.Results {
		log.Info().
			Str("run_id", report.RunID).
			Str("scenario", res.Scenario).
			Int("worker", res.Worker).
			Int("ops", res.Ops).
			Dur("elapsed", res.Elapsed).
			Msg("worker result")
	}
	if err != nil {
		stop()
		log.Fatal().Err(err).Str("run_id", report.RunID).Msg("benchmark failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
