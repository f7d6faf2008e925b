// Package xrand centralizes deterministic random generation shared by
// candidateset and tiling.
//
// Goals:
//   - Determinism: same seed => identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based source hidden
//     inside the packages that consume it.
//   - Every caller gets an independent *rand.Rand; math/rand.Rand is not
//     goroutine-safe, and this engine is single-threaded by design
//     (see tiling's concurrency notes), so no locking is added here.
package xrand

import (
	"math/rand"
	"time"
)

// New returns a *rand.Rand seeded from seed. A seed of 0 means
// "unseeded": the caller gets a source keyed off the current time,
// matching the original implementation's use of a process-global,
// unseedable RNG. Tests that need reproducibility should pass a
// non-zero seed explicitly.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style avalanche mix, so independent
// substreams (e.g. one engine's addable vs. removable candidate sets)
// don't correlate even when derived from the same parent.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent deterministic RNG stream from a parent
// RNG and a stream identifier. If parent is nil, seed 0 (time-seeded)
// is used as the base. Otherwise parent.Int63() is consumed once to
// decorrelate consecutive derivations before mixing in stream.
//
// Complexity: O(1).
func Derive(parent *rand.Rand, stream uint64) *rand.Rand {
	var base int64
	if parent == nil {
		base = time.Now().UnixNano()
	} else {
		base = parent.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(base, stream)))
}
