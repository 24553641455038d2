// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can drive a run.
func (cfg *StructuredConfig) validate() error {
	b := cfg.Bench
	if b.Iterations <= 0 || b.Workers <= 0 || b.RotateEvery < 0 || b.Timeout < 0 {
		return ErrInvalidBenchConfigs
	}

	if len(b.Kinds) == 0 {
		return fmt.Errorf("%w: no kinds selected", ErrInvalidBenchConfigs)
	}
	for _, kind := range b.Kinds {
		switch kind {
		case KindInt, KindFloat, KindString:
		default:
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidBenchConfigs, kind)
		}
	}

	if _, err := cfg.KeySource.SeedBytes(); err != nil {
		return fmt.Errorf("%w: seed: %w", ErrInvalidKeySourceConfigs, err)
	}

	return nil
}
