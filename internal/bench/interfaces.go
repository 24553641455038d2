// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import "context"

// Scenario is a workload for one container kind.
//
// Run performs iterations steps and blocks until they are done, ctx is
// cancelled, or the obscured value drifts from its plaintext shadow.
type Scenario interface {
	Name() string
	Run(ctx context.Context, iterations int) (Result, error)
}

type idGenerator interface {
	Generate() string
}
