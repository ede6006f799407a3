package placement

import (
	"math"
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseStep is the distance travelled through the noise field per candidate.
// Large enough that consecutive candidates decorrelate, small enough to keep the
// walk coherent.
const noiseStep = 0.37

// noiseAmplitude scales the field offset, in fractions of the bounds.
const noiseAmplitude = 0.5

// r2X and r2Y are the additive steps of the R2 low-discrepancy sequence
// (inverse powers of the plastic number).
const (
	r2X = 0.7548776662466927
	r2Y = 0.5698402909980532
)

// NoiseSampler perturbs an R2 low-discrepancy sequence with an OpenSimplex field.
// The sequence spreads candidates over the whole rectangle and the field bends it
// into a seed-specific layout. The cursor persists across calls, so successive
// branches continue the same walk.
type NoiseSampler struct {
	opts Options

	mu     sync.Mutex
	dx, dy opensimplex.Noise
	step   int
	last   Stats
}

// NewNoiseSampler returns a noise sampler. Zero-valued options take defaults.
func NewNoiseSampler(opts Options) *NoiseSampler {
	opts = opts.normalized()

	return &NoiseSampler{
		opts: opts,
		dx:   opensimplex.New(opts.Seed),
		dy:   opensimplex.New(deriveSeed(opts.Seed, 1)),
	}
}

// Place implements Sampler.
//
// Errors: ErrInvalidBounds, ErrInvalidSeparation, ErrPlacementExhausted.
func (s *NoiseSampler) Place(existing []Point, b Bounds, minSep float64) (Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, st, err := search(s, s.opts, existing, b, minSep)
	s.last = st

	return p, err
}

// LastStats reports the search statistics of the most recent Place call.
func (s *NoiseSampler) LastStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.last
}

// Options returns the effective options.
func (s *NoiseSampler) Options() Options { return s.opts }

// next advances the walk and maps the perturbed sequence point into b.
// Caller holds mu.
func (s *NoiseSampler) next(b Bounds) Point {
	s.step++
	n := float64(s.step)
	t := n * noiseStep
	u := wrap(0.5 + r2X*n + noiseAmplitude*s.dx.Eval2(t, 0))
	v := wrap(0.5 + r2Y*n + noiseAmplitude*s.dy.Eval2(0, t))

	return Point{X: lerp(b.MinX, b.MaxX, u), Y: lerp(b.MinY, b.MaxY, v)}
}

// wrap returns the fractional part of x in [0, 1).
func wrap(x float64) float64 {
	return x - math.Floor(x)
}
