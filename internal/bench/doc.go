// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bench runs concurrent workloads against the obscured containers.
//
// Every scenario drives one container kind through a scripted sequence of
// operations and keeps a plaintext shadow of the expected value. After each
// step the decoded container is compared with the shadow; any difference is
// reported as [ErrIntegrity]. A [Runner] starts the configured number of
// workers per scenario, all sharing one key source, and collects a [Report].
package bench
