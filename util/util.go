// Package util provides helpers for tests and benchmarks.
package util

import "math/rand"

const lineAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789_-./"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomLines generates candidate lines of up to maxLen bytes drawn
// from a path-like alphabet.
func (r *RNG) GenerateRandomLines(num, maxLen int) [][]byte {
	lines := make([][]byte, num)
	for i := range lines {
		n := 1 + r.rand.Intn(maxLen)
		line := make([]byte, n)
		for j := range line {
			line[j] = lineAlphabet[r.rand.Intn(len(lineAlphabet))]
		}
		lines[i] = line
	}

	return lines
}
