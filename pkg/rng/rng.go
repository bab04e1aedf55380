// Package rng provides the seedable pseudorandom stream consumed by the shape
// samplers.
//
// A [Stream] remembers the seed it was created with, so [Stream.Reseed] rewinds
// it to the start of the sequence. Regenerating a tree after a reseed with
// unchanged settings reproduces an identical point cloud and therefore an
// identical tree.
package rng

import "math/rand/v2"

// DefaultSeed is used when a caller asks for a deterministic stream without
// naming a seed.
const DefaultSeed = uint64(42)

// Source is the capability samplers need: uniform variates in [0, 1).
type Source interface {
	Float64() float64
}

// Stream is a deterministic PCG-backed Source.
type Stream struct {
	seed uint64
	pcg  *rand.PCG
	r    *rand.Rand
}

// New returns a stream seeded with seed.
func New(seed uint64) *Stream {
	pcg := rand.NewPCG(seed, seed^0xdeadbeef)
	return &Stream{seed: seed, pcg: pcg, r: rand.New(pcg)}
}

// NewRandom returns a stream with a freshly drawn seed. The seed is recorded,
// so Reseed and Seed behave exactly as for New.
func NewRandom() *Stream {
	return New(rand.Uint64())
}

// Float64 returns a uniform variate in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Range returns a uniform variate in [lo, hi).
func (s *Stream) Range(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Seed returns the seed the stream was created with.
func (s *Stream) Seed() uint64 {
	return s.seed
}

// Reseed rewinds the stream to its starting seed.
func (s *Stream) Reseed() {
	s.pcg.Seed(s.seed, s.seed^0xdeadbeef)
}

var _ Source = (*Stream)(nil)
