// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keysource

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
)

// Affine key ranges. The multiplier is bounded away from zero by
// MinMultiplier so decoding never divides by a value close to zero.
const (
	MaxAddend     = 10.0
	MinMultiplier = 1.0
	MaxMultiplier = 10.0
)

const (
	seedSize = chacha20.KeySize + chacha20.NonceSize

	// ratchetBytes is how much keystream is served before the stream re-keys
	// itself from its own output. It keeps the 32-bit chacha20 block counter
	// far from overflow.
	ratchetBytes = 1 << 30
)

// Stream is a [Source] backed by a chacha20 keystream. Draws are serialised
// by an internal mutex, so one Stream can be shared by any number of
// goroutines.
type Stream struct {
	mu     sync.Mutex
	cipher *chacha20.Cipher
	drawn  uint64
}

var (
	defaultOnce   sync.Once
	defaultStream *Stream
	defaultErr    error
)

// Default returns the process-wide key source, creating it on first use. If
// the source cannot be seeded the error is remembered and returned on every
// call.
func Default() (Source, error) {
	defaultOnce.Do(func() {
		defaultStream, defaultErr = New()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return defaultStream, nil
}

// New creates a Stream seeded from the operating system CSPRNG. It returns an
// error wrapping [ErrInitialization] if the seed cannot be read.
func New() (*Stream, error) {
	return newFromReader(rand.Reader)
}

// NewSeeded creates a deterministic Stream: two streams built from the same
// seed produce the same key sequence. The seed may be of any non-zero length;
// it is stretched with SHA-512 into the chacha20 key and nonce.
func NewSeeded(seed []byte) (*Stream, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", ErrInitialization)
	}

	sum := sha512.Sum512(seed)
	return newFromSeed(sum[:seedSize])
}

func newFromReader(r io.Reader) (*Stream, error) {
	seed := make([]byte, seedSize)
	if _, err := io.ReadFull(r, seed); err != nil {
		return nil, fmt.Errorf("%w: read seed: %w", ErrInitialization, err)
	}
	defer clear(seed)

	return newFromSeed(seed)
}

func newFromSeed(seed []byte) (*Stream, error) {
	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:seedSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	return &Stream{cipher: c}, nil
}

// Bytes implements [Source].
func (s *Stream) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}

	buf := make([]byte, n)
	s.mu.Lock()
	s.fill(buf)
	s.mu.Unlock()

	return buf
}

// AffinePair implements [Source]. Both values are drawn uniformly from their
// ranges using 53 bits of keystream each.
func (s *Stream) AffinePair() (add, mul float64) {
	var buf [16]byte
	s.mu.Lock()
	s.fill(buf[:])
	s.mu.Unlock()

	add = unit(binary.LittleEndian.Uint64(buf[:8])) * MaxAddend
	mul = MinMultiplier + unit(binary.LittleEndian.Uint64(buf[8:]))*(MaxMultiplier-MinMultiplier)
	return add, mul
}

// fill overwrites buf with keystream. The caller must hold s.mu and pass a
// zeroed buffer.
func (s *Stream) fill(buf []byte) {
	if s.drawn+uint64(len(buf)) > ratchetBytes {
		s.ratchet()
	}

	s.cipher.XORKeyStream(buf, buf)
	s.drawn += uint64(len(buf))
}

// ratchet replaces the cipher with one keyed from the current keystream.
func (s *Stream) ratchet() {
	next := make([]byte, seedSize)
	s.cipher.XORKeyStream(next, next)
	defer clear(next)

	c, err := chacha20.NewUnauthenticatedCipher(next[:chacha20.KeySize], next[chacha20.KeySize:])
	if err != nil {
		return
	}

	s.cipher = c
	s.drawn = 0
}

// unit maps x to a float64 in [0, 1).
func unit(x uint64) float64 {
	return float64(x>>11) / (1 << 53)
}
