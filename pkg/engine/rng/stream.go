// Package rng provides a seeded deterministic random stream for level
// generation. Every generation decision draws from one Stream in a fixed
// order, so the same seed always reproduces the same level.
package rng

import (
	"math/rand"
	"sort"
)

// Stream is a reproducible random source. It must not be shared between
// concurrent generations; each generation call owns its own Stream.
type Stream struct {
	seed int64
	r    *rand.Rand
}

// New creates a stream seeded with the given value.
func New(seed int64) *Stream {
	return &Stream{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed this stream was created with.
func (s *Stream) Seed() int64 {
	return s.seed
}

// Float64 returns a uniform float in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a uniform int in [0, n). n must be positive.
func (s *Stream) IntN(n int) int {
	return s.r.Intn(n)
}

// IntRange returns a uniform int in [min, max]. If max < min it returns min
// without consuming a draw.
func (s *Stream) IntRange(min, max int) int {
	if max < min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Chance returns true with probability p. Probabilities at or below zero
// never fire; at or above one always fire. A draw is consumed either way to
// keep the stream position independent of p.
func (s *Stream) Chance(p float64) bool {
	return s.r.Float64() < p
}

// Pick returns a uniformly chosen element of choices.
func Pick[T any](s *Stream, choices []T) T {
	return choices[s.r.Intn(len(choices))]
}

// Shuffle randomizes the order of a slice in place.
func Shuffle[T any](s *Stream, items []T) {
	s.r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// WeightedChoice picks a key from a weight table. Keys are visited in
// sorted order so the draw is independent of map iteration order.
// Non-positive weights are skipped. Returns "" if no weight is positive.
func (s *Stream) WeightedChoice(weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	total := 0.0
	for k, w := range weights {
		if w > 0 {
			keys = append(keys, k)
			total += w
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	roll := s.r.Float64() * total
	for _, k := range keys {
		roll -= weights[k]
		if roll < 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}
