// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obscured

import (
	"fmt"

	"github.com/MKhiriev/go-obscured/keysource"
)

// Option configures container construction.
type Option func(*options)

type options struct {
	src keysource.Source
}

// WithKeySource makes the container draw its keys from src instead of the
// process-wide [keysource.Default].
func WithKeySource(src keysource.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

func resolveSource(opts []Option) (keysource.Source, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.src != nil {
		return o.src, nil
	}

	src, err := keysource.Default()
	if err != nil {
		return nil, fmt.Errorf("default key source: %w", err)
	}
	return src, nil
}

// defaultSource backs zero-value containers, whose methods cannot return an
// error. The default source only fails when the operating system CSPRNG is
// unreadable.
func defaultSource() keysource.Source {
	src, err := keysource.Default()
	if err != nil {
		panic(fmt.Sprintf("obscured: default key source: %v", err))
	}
	return src
}
