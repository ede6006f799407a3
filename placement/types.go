package placement

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for placement.
var (
	// ErrInvalidBounds indicates non-finite bounds or Min > Max on an axis.
	ErrInvalidBounds = errors.New("placement: invalid bounds")

	// ErrInvalidSeparation indicates a negative or non-finite minimum separation.
	ErrInvalidSeparation = errors.New("placement: invalid separation")

	// ErrPlacementExhausted indicates no acceptable point was found within the retry budget.
	ErrPlacementExhausted = errors.New("placement: exhausted")

	// ErrUnknownStrategy indicates New was asked for a strategy it does not know.
	ErrUnknownStrategy = errors.New("placement: unknown strategy")
)

// Strategy names accepted by New.
const (
	StrategyUniform = "uniform"
	StrategyNoise   = "noise"
)

// Defaults for Options.
const (
	DefaultMaxAttempts       = 1000
	DefaultRelaxFactor       = 0.5
	DefaultRelaxSteps        = 3
	DefaultSeed        int64 = 1
)

// Point is a position in screen units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Bounds is the closed rectangle [MinX, MaxX] × [MinY, MaxY].
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// ScreenBounds returns the area in which a nodeSize box fits entirely inside a
// width × height canvas anchored at the origin.
func ScreenBounds(width, height, nodeSize float64) Bounds {
	return Bounds{MinX: 0, MinY: 0, MaxX: width - nodeSize, MaxY: height - nodeSize}
}

// Valid reports whether b is finite and non-inverted. Degenerate (zero-width) bounds are valid.
func (b Bounds) Valid() bool {
	for _, v := range [...]float64{b.MinX, b.MinY, b.MaxX, b.MaxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Contains reports whether p lies inside b, edges included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Sampler chooses a position for a new branch.
type Sampler interface {
	// Place returns a point inside b strictly farther than minSep from every point in existing.
	Place(existing []Point, b Bounds, minSep float64) (Point, error)
}

// Stats describes the last Place call of a sampler.
type Stats struct {
	// Attempts is the number of candidates drawn.
	Attempts int

	// RelaxStep is the step at which the point was accepted (0 = full separation).
	RelaxStep int

	// Separation is the separation the accepted point satisfies.
	Separation float64
}

// Options bounds the search. Zero MaxAttempts, RelaxFactor and Seed select the
// defaults; zero RelaxSteps disables relaxing. DefaultOptions carries every default.
type Options struct {
	// MaxAttempts is the number of candidates per relax step.
	MaxAttempts int

	// RelaxFactor multiplies the separation after each failed step; must lie in (0, 1].
	RelaxFactor float64

	// RelaxSteps is the number of relaxed rounds after the first one. 0 keeps the
	// separation fixed; negative values are treated as 0.
	RelaxSteps int

	// Seed selects the candidate stream. 0 selects DefaultSeed.
	Seed int64
}

// DefaultOptions returns 1000 attempts, factor 0.5, 3 relax steps and seed 1.
func DefaultOptions() Options {
	return Options{
		MaxAttempts: DefaultMaxAttempts,
		RelaxFactor: DefaultRelaxFactor,
		RelaxSteps:  DefaultRelaxSteps,
		Seed:        DefaultSeed,
	}
}

// normalized replaces out-of-range fields with defaults.
func (o Options) normalized() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if !(o.RelaxFactor > 0 && o.RelaxFactor <= 1) {
		o.RelaxFactor = DefaultRelaxFactor
	}
	if o.RelaxSteps < 0 {
		o.RelaxSteps = 0
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	return o
}

// New returns the sampler for strategy ("uniform" or "noise").
func New(strategy string, opts Options) (Sampler, error) {
	switch strategy {
	case StrategyUniform, "":
		return NewUniformSampler(opts), nil
	case StrategyNoise:
		return NewNoiseSampler(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}
