// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidBenchConfigs indicates invalid workload settings
	// (for example, zero workers or an unknown scenario kind).
	ErrInvalidBenchConfigs = errors.New("invalid bench configuration")
	// ErrInvalidKeySourceConfigs indicates invalid key source settings
	// (for example, a seed that is not hex).
	ErrInvalidKeySourceConfigs = errors.New("invalid key source configuration")
)
