package placement

import (
	"math/rand"
	"sync"
)

// UniformSampler draws independent uniform candidates from a seeded source.
type UniformSampler struct {
	opts Options

	mu   sync.Mutex
	rng  *rand.Rand
	last Stats
}

// NewUniformSampler returns a uniform sampler. Zero-valued options take defaults.
func NewUniformSampler(opts Options) *UniformSampler {
	opts = opts.normalized()

	return &UniformSampler{opts: opts, rng: rngFromSeed(opts.Seed)}
}

// Place implements Sampler.
//
// Errors: ErrInvalidBounds, ErrInvalidSeparation, ErrPlacementExhausted.
func (s *UniformSampler) Place(existing []Point, b Bounds, minSep float64) (Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, st, err := search(uniformSource{s.rng}, s.opts, existing, b, minSep)
	s.last = st

	return p, err
}

// LastStats reports the search statistics of the most recent Place call.
func (s *UniformSampler) LastStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Options returns the effective options.
func (s *UniformSampler) Options() Options { return s.opts }

type uniformSource struct{ rng *rand.Rand }

func (u uniformSource) next(b Bounds) Point {
	return Point{X: lerp(b.MinX, b.MaxX, u.rng.Float64()), Y: lerp(b.MinY, b.MaxY, u.rng.Float64())}
}
