// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import "github.com/google/uuid"

// RunIDGenerator issues identifiers for benchmark runs. The identifiers are
// UUIDv7, so they sort by start time.
type RunIDGenerator struct {
}

func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
