// Package placement picks 2D display positions for new branches so that no two
// branches are drawn on top of each other.
//
// A Sampler draws candidate points inside Bounds and accepts the first one that is
// strictly farther than minSep from every existing point. The search is bounded:
//
//	for step := 0; step <= RelaxSteps; step++ {
//	    sep := minSep * RelaxFactor^step
//	    try MaxAttempts candidates against sep
//	}
//	→ ErrPlacementExhausted
//
// Two candidate streams are provided:
//
//   - UniformSampler: independent uniform draws from a seeded math/rand source.
//   - NoiseSampler: an R2 low-discrepancy sequence displaced by an OpenSimplex
//     field. Candidates reach the whole rectangle; the field shapes the layout.
//
// Both are deterministic for a given seed and call sequence. Both are safe for
// concurrent use; calls are serialized internally.
package placement
