// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"math"
	"time"
)

// Value kinds understood by the benchmark harness.
const (
	KindInt    = "int"
	KindFloat  = "float"
	KindString = "string"
)

// mergo treats zero as "not set", so a source that sets a field to zero on
// purpose stores one of these markers instead. normalize turns them back
// into zero once every source and the defaults are merged.
const (
	explicitZeroInt      = math.MinInt
	explicitZeroDuration = time.Duration(math.MinInt64)
)

// StructuredConfig is the top-level configuration container for the
// obscure-bench harness.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Bench holds the workload settings.
	Bench Bench `envPrefix:"BENCH_"`

	// KeySource selects where container keys come from.
	KeySource KeySource `envPrefix:"KEYSOURCE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Bench describes the workload run by the harness.
type Bench struct {
	// Iterations is the number of steps each scenario worker performs.
	// Env: BENCH_ITERATIONS
	Iterations int `env:"ITERATIONS"`

	// Workers is the number of concurrent workers per scenario. All workers
	// share one key source.
	// Env: BENCH_WORKERS
	Workers int `env:"WORKERS"`

	// RotateEvery makes the integer scenario rotate its keys every N steps.
	// Zero disables rotation.
	// Env: BENCH_ROTATE_EVERY
	RotateEvery int `env:"ROTATE_EVERY"`

	// Kinds lists the scenarios to run (int, float, string).
	// Env: BENCH_KINDS (comma separated)
	Kinds []string `env:"KINDS" envSeparator:","`

	// Timeout bounds the whole run (e.g. "30s", "1m"). Zero means no limit.
	// Env: BENCH_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// KeySource selects the key source used by the run.
type KeySource struct {
	// Seed is a hex-encoded seed for a deterministic key source. Empty means
	// the process-wide CSPRNG-seeded source.
	// Env: KEYSOURCE_SEED
	Seed string `env:"SEED"`
}

// SeedBytes decodes Seed. It returns nil for an empty seed.
func (k KeySource) SeedBytes() ([]byte, error) {
	if k.Seed == "" {
		return nil, nil
	}
	return hex.DecodeString(k.Seed)
}

// markExplicitZeros records that rotateEvery and timeout were given by a
// source, so a zero value survives merging.
func (b *Bench) markExplicitZeros(rotateEvery, timeout bool) {
	if rotateEvery && b.RotateEvery == 0 {
		b.RotateEvery = explicitZeroInt
	}
	if timeout && b.Timeout == 0 {
		b.Timeout = explicitZeroDuration
	}
}

// normalize replaces explicit-zero markers with zero.
func (cfg *StructuredConfig) normalize() {
	if cfg.Bench.RotateEvery == explicitZeroInt {
		cfg.Bench.RotateEvery = 0
	}
	if cfg.Bench.Timeout == explicitZeroDuration {
		cfg.Bench.Timeout = 0
	}
}

// DefaultConfig returns the values used for fields no source has set.
func DefaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Bench: Bench{
			Iterations:  10000,
			Workers:     4,
			RotateEvery: 100,
			Kinds:       []string{KindInt, KindFloat, KindString},
			Timeout:     time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still unset. A zero RotateEvery or Timeout given
// explicitly by any source is kept.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
