// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// KindList is a comma separated list of scenario kinds.
// It implements the flag.Value interface.
type KindList []string

// String returns the kinds joined with commas.
func (k *KindList) String() string {
	if k == nil {
		return ""
	}
	return strings.Join(*k, ",")
}

// Set parses a comma separated list, trimming blanks and dropping empty
// entries. Repeating the flag appends.
func (k *KindList) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*k = append(*k, strings.ToLower(part))
		}
	}
	return nil
}

// ParseFlags parses the harness flags from args.
//
// Flags:
//
//	-n iterations per worker
//	-w workers per scenario
//	-rotate-every rotate integer keys every N steps
//	-kinds comma separated scenario kinds (int,float,string)
//	-timeout overall run timeout (e.g., "30s", "1m")
//	-seed hex seed for a deterministic key source
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var iterations, workers, rotateEvery int
	var kinds KindList
	var timeout time.Duration
	var seed string
	var jsonConfigPath string

	fs := flag.NewFlagSet("obscure-bench", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&iterations, "n", 0, "Iterations per worker")
	fs.IntVar(&workers, "w", 0, "Workers per scenario")
	fs.IntVar(&rotateEvery, "rotate-every", 0, "Rotate integer keys every N steps")
	fs.Var(&kinds, "kinds", "Comma separated scenario kinds (int,float,string)")
	fs.DurationVar(&timeout, "timeout", 0, "Run timeout (e.g., 30s, 1m)")
	fs.StringVar(&seed, "seed", "", "Hex seed for a deterministic key source")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var rotateSet, timeoutSet bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rotate-every":
			rotateSet = true
		case "timeout":
			timeoutSet = true
		}
	})

	cfg := &StructuredConfig{
		Bench: Bench{
			Iterations:  iterations,
			Workers:     workers,
			RotateEvery: rotateEvery,
			Kinds:       kinds,
			Timeout:     timeout,
		},
		KeySource: KeySource{
			Seed: seed,
		},
		JSONFilePath: jsonConfigPath,
	}
	cfg.Bench.markExplicitZeros(rotateSet, timeoutSet)

	return cfg, nil
}
