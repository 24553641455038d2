// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import (
	"fmt"

	"github.com/MKhiriev/go-obscured/internal/config"
	"github.com/MKhiriev/go-obscured/keysource"
)

// NewKeySource returns a deterministic stream when cfg carries a seed and the
// process-wide default source otherwise.
func NewKeySource(cfg config.KeySource) (keysource.Source, error) {
	seed, err := cfg.SeedBytes()
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	if seed == nil {
		return keysource.Default()
	}

	stream, err := keysource.NewSeeded(seed)
	if err != nil {
		return nil, err
	}
	return stream, nil
}
