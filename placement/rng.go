// RNG utilities shared by the samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical candidate streams across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Samplers guard their source with a mutex.
package placement

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
// SplitMix64 finalizer constants; small input changes spread across all bits.
// The noise sampler uses it to decorrelate its field from its offsets.
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

// lerp maps u ∈ [0,1] onto [lo, hi].
func lerp(lo, hi, u float64) float64 {
	return lo + (hi-lo)*u
}
