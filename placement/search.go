package placement

import (
	"fmt"
	"math"
)

// source produces the next candidate inside b.
type source interface {
	next(b Bounds) Point
}

// search runs the bounded relax-and-retry loop over src.
//
// Implementation:
//   - Stage 1: Validate bounds (ErrInvalidBounds) and separation (ErrInvalidSeparation).
//   - Stage 2: For step 0..RelaxSteps, draw MaxAttempts candidates and accept the
//     first one strictly farther than minSep·RelaxFactor^step from every existing point.
//   - Stage 3: ErrPlacementExhausted with the number of candidates drawn.
//
// Complexity: O((RelaxSteps+1) · MaxAttempts · len(existing)).
func search(src source, opts Options, existing []Point, b Bounds, minSep float64) (Point, Stats, error) {
	if !b.Valid() {
		return Point{}, Stats{}, fmt.Errorf("%w: %+v", ErrInvalidBounds, b)
	}
	if math.IsNaN(minSep) || math.IsInf(minSep, 0) || minSep < 0 {
		return Point{}, Stats{}, fmt.Errorf("%w: %v", ErrInvalidSeparation, minSep)
	}

	var st Stats
	sep := minSep
	for step := 0; step <= opts.RelaxSteps; step++ {
		st.RelaxStep = step
		st.Separation = sep
		for i := 0; i < opts.MaxAttempts; i++ {
			st.Attempts++
			p := src.next(b)
			if isClear(p, existing, sep) {
				return p, st, nil
			}
		}
		sep *= opts.RelaxFactor
	}

	return Point{}, st, fmt.Errorf("%w: no free point after %d attempts (last separation %.3g)",
		ErrPlacementExhausted, st.Attempts, st.Separation)
}

// isClear reports whether p is strictly farther than sep from every point in existing.
func isClear(p Point, existing []Point, sep float64) bool {
	for _, q := range existing {
		if p.Dist(q) <= sep {
			return false
		}
	}

	return true
}
