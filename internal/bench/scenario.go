// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/MKhiriev/go-obscured/internal/config"
	"github.com/MKhiriev/go-obscured/keysource"
	"github.com/MKhiriev/go-obscured/obscured"
)

// Result describes one finished scenario run.
type Result struct {
	Scenario string
	Worker   int
	Ops      int
	Elapsed  time.Duration
}

func newScenario(kind string, src keysource.Source, cfg config.Bench) (Scenario, error) {
	switch kind {
	case config.KindInt:
		return NewIntScenario(src, cfg.RotateEvery), nil
	case config.KindFloat:
		return NewFloatScenario(src), nil
	case config.KindString:
		return NewStringScenario(src), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ── int ───────────────────────────────────────────────────────────────────────

// IntScenario keeps a score counter. Each step adds, subtracts or multiplies
// by a small constant, and the keys are rotated every rotateEvery steps.
type IntScenario struct {
	src         keysource.Source
	rotateEvery int
}

func NewIntScenario(src keysource.Source, rotateEvery int) *IntScenario {
	return &IntScenario{src: src, rotateEvery: rotateEvery}
}

func (s *IntScenario) Name() string {
	return config.KindInt
}

func (s *IntScenario) Run(ctx context.Context, iterations int) (Result, error) {
	started := time.Now()
	res := Result{Scenario: s.Name()}

	score, err := obscured.NewInt(0, obscured.WithKeySource(s.src))
	if err != nil {
		return res, err
	}
	score.RotateKeys()
	var plain int32

	for i := range iterations {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(started)
			return res, err
		}

		step := int32(i%7 + 1)
		switch i % 4 {
		case 0:
			score, err = score.ApplyPlain(obscured.OpAdd, step)
			plain += step
		case 1:
			score, err = score.ApplyPlain(obscured.OpMul, 3)
			plain *= 3
		case 2:
			score, err = score.ApplyPlain(obscured.OpSub, step)
			plain -= step
		case 3:
			score.Inc()
			plain++
		}
		if err != nil {
			return res, err
		}

		if s.rotateEvery > 0 && (i+1)%s.rotateEvery == 0 {
			score.RotateKeys()
		}

		if got := score.Value(); got != plain {
			return res, fmt.Errorf("%w: step %d: got %d, want %d", ErrIntegrity, i, got, plain)
		}
		res.Ops++
	}

	res.Elapsed = time.Since(started)
	return res, nil
}

// ── float ─────────────────────────────────────────────────────────────────────

// FloatScenario accumulates fractional steps and halves the total every
// tenth step. Results must match plain float64 arithmetic bit for bit.
type FloatScenario struct {
	src keysource.Source
}

func NewFloatScenario(src keysource.Source) *FloatScenario {
	return &FloatScenario{src: src}
}

func (s *FloatScenario) Name() string {
	return config.KindFloat
}

func (s *FloatScenario) Run(ctx context.Context, iterations int) (Result, error) {
	started := time.Now()
	res := Result{Scenario: s.Name()}

	acc, err := obscured.NewFloat64(0, obscured.WithKeySource(s.src))
	if err != nil {
		return res, err
	}
	var plain float64

	for i := range iterations {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(started)
			return res, err
		}

		step := float64(i%13) * 0.1
		if acc, err = acc.ApplyPlain(obscured.OpAdd, step); err != nil {
			return res, err
		}
		plain += step

		if i%10 == 9 {
			if acc, err = acc.ApplyPlain(obscured.OpDiv, 2); err != nil {
				return res, err
			}
			plain /= 2
		}

		if got := acc.Value(); math.Float64bits(got) != math.Float64bits(plain) {
			return res, fmt.Errorf("%w: step %d: got %v, want %v", ErrIntegrity, i, got, plain)
		}
		res.Ops++
	}

	res.Elapsed = time.Since(started)
	return res, nil
}

// ── string ────────────────────────────────────────────────────────────────────

// maxTextLen bounds the string scenario's text so it wraps the key a few
// times without growing without limit.
const maxTextLen = 256

// StringScenario appends digits, patches the first byte and reads the text
// back through indexing and comparison.
type StringScenario struct {
	src keysource.Source
}

func NewStringScenario(src keysource.Source) *StringScenario {
	return &StringScenario{src: src}
}

func (s *StringScenario) Name() string {
	return config.KindString
}

func (s *StringScenario) Run(ctx context.Context, iterations int) (Result, error) {
	started := time.Now()
	res := Result{Scenario: s.Name()}

	text, err := obscured.NewString("", obscured.WithKeySource(s.src))
	if err != nil {
		return res, err
	}
	var plain []byte

	for i := range iterations {
		if err := ctx.Err(); err != nil {
			res.Elapsed = time.Since(started)
			return res, err
		}

		digit := byte('0' + i%10)
		if len(plain) >= maxTextLen {
			text.Set("")
			plain = plain[:0]
		}
		text = text.Append(string(digit))
		plain = append(plain, digit)

		if i%5 == 4 {
			if err := text.ReplaceAt(0, '#'); err != nil {
				return res, err
			}
			plain[0] = '#'
		}

		last, err := text.At(len(plain) - 1)
		if err != nil {
			return res, err
		}
		if last != plain[len(plain)-1] || !text.EqualString(string(plain)) {
			return res, fmt.Errorf("%w: step %d: got %q, want %q", ErrIntegrity, i, text.Value(), plain)
		}
		res.Ops++
	}

	res.Elapsed = time.Since(started)
	return res, nil
}
