package placement_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/placement"
)

// canvas mirrors the default 800×600 network area with a 50 px node box.
var canvas = placement.ScreenBounds(800, 600, 50)

type statsSampler interface {
	placement.Sampler
	LastStats() placement.Stats
}

func samplers(seed int64) map[string]statsSampler {
	opts := placement.Options{Seed: seed}

	return map[string]statsSampler{
		placement.StrategyUniform: placement.NewUniformSampler(opts),
		placement.StrategyNoise:   placement.NewNoiseSampler(opts),
	}
}

func TestScreenBounds(t *testing.T) {
	assert.Equal(t, placement.Bounds{MinX: 0, MinY: 0, MaxX: 750, MaxY: 550}, canvas)
	assert.True(t, canvas.Valid())
	assert.True(t, canvas.Contains(placement.Point{X: 750, Y: 0}))
	assert.False(t, canvas.Contains(placement.Point{X: 750.5, Y: 0}))
}

func TestBoundsValid(t *testing.T) {
	assert.True(t, placement.Bounds{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5}.Valid())
	assert.False(t, placement.Bounds{MinX: 10, MaxX: 0}.Valid())
	assert.False(t, placement.Bounds{MaxX: math.Inf(1), MaxY: 1}.Valid())
	assert.False(t, placement.Bounds{MinY: math.NaN(), MaxX: 1, MaxY: 1}.Valid())
}

// TestPlace_RespectsSeparation fills the canvas and checks every accepted point.
func TestPlace_RespectsSeparation(t *testing.T) {
	for name, s := range samplers(7) {
		t.Run(name, func(t *testing.T) {
			var placed []placement.Point
			for i := 0; i < 12; i++ {
				p, err := s.Place(placed, canvas, 100)
				require.NoError(t, err, "branch %d", i)
				require.True(t, canvas.Contains(p))

				st := s.LastStats()
				for _, q := range placed {
					require.Greater(t, p.Dist(q), st.Separation)
				}
				if st.RelaxStep == 0 {
					assert.Equal(t, 100.0, st.Separation)
				}
				placed = append(placed, p)
			}
		})
	}
}

// TestPlace_Deterministic checks that two samplers with one seed agree.
func TestPlace_Deterministic(t *testing.T) {
	for _, strategy := range []string{placement.StrategyUniform, placement.StrategyNoise} {
		a, err := placement.New(strategy, placement.Options{Seed: 42})
		require.NoError(t, err)
		b, err := placement.New(strategy, placement.Options{Seed: 42})
		require.NoError(t, err)

		var pa, pb []placement.Point
		for i := 0; i < 8; i++ {
			p1, err1 := a.Place(pa, canvas, 80)
			p2, err2 := b.Place(pb, canvas, 80)
			require.NoError(t, err1)
			require.NoError(t, err2)
			require.Equal(t, p1, p2, "%s step %d", strategy, i)
			pa, pb = append(pa, p1), append(pb, p2)
		}
	}
}

// TestPlace_Exhausted checks the search terminates with the full budget spent.
func TestPlace_Exhausted(t *testing.T) {
	pin := placement.Bounds{MinX: 10, MinY: 10, MaxX: 10, MaxY: 10}
	existing := []placement.Point{{X: 10, Y: 10}}
	opts := placement.Options{MaxAttempts: 25, RelaxFactor: 0.5, RelaxSteps: 2, Seed: 3}

	for name, s := range map[string]statsSampler{
		"uniform": placement.NewUniformSampler(opts),
		"noise":   placement.NewNoiseSampler(opts),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := s.Place(existing, pin, 100)
			require.ErrorIs(t, err, placement.ErrPlacementExhausted)
			st := s.LastStats()
			assert.Equal(t, 75, st.Attempts)
			assert.Equal(t, 2, st.RelaxStep)
			assert.Equal(t, 25.0, st.Separation)

			// Zero separation still needs a strictly positive distance.
			_, err = s.Place(existing, pin, 0)
			require.ErrorIs(t, err, placement.ErrPlacementExhausted)
		})
	}
}

// TestPlace_Relaxes checks that a crowded area is resolved by a relaxed step.
func TestPlace_Relaxes(t *testing.T) {
	small := placement.Bounds{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	existing := []placement.Point{{X: 50, Y: 50}}
	s := placement.NewUniformSampler(placement.Options{MaxAttempts: 50, RelaxFactor: 0.5, RelaxSteps: 3, Seed: 9})

	// Nothing in the box is farther than 100 from the centre; 25 is easy.
	p, err := s.Place(existing, small, 100)
	require.NoError(t, err)
	st := s.LastStats()
	assert.GreaterOrEqual(t, st.RelaxStep, 1)
	assert.Greater(t, p.Dist(existing[0]), st.Separation)
	assert.True(t, small.Contains(p))
}

// TestPlace_Coverage checks that both candidate streams reach every cell of a
// 10×10 grid over the canvas.
func TestPlace_Coverage(t *testing.T) {
	const cells = 10
	for name, s := range samplers(placement.DefaultSeed) {
		t.Run(name, func(t *testing.T) {
			var hit [cells][cells]bool
			for i := 0; i < 20000; i++ {
				// No existing points: the first candidate is always accepted.
				p, err := s.Place(nil, canvas, 0)
				require.NoError(t, err)
				cx := min(int(p.X/(canvas.MaxX/cells)), cells-1)
				cy := min(int(p.Y/(canvas.MaxY/cells)), cells-1)
				hit[cx][cy] = true
			}

			for x := range hit {
				for y := range hit[x] {
					assert.True(t, hit[x][y], "cell (%d,%d) never sampled", x, y)
				}
			}
		})
	}
}

// TestPlace_DistrictsAtFullSeparation places a network the size of the default
// gazetteer and expects no branch to need a relaxed separation.
func TestPlace_DistrictsAtFullSeparation(t *testing.T) {
	for _, strategy := range []string{placement.StrategyUniform, placement.StrategyNoise} {
		t.Run(strategy, func(t *testing.T) {
			s, err := placement.New(strategy, placement.DefaultOptions())
			require.NoError(t, err)
			stats := s.(statsSampler)

			var placed []placement.Point
			for i := 0; i < 23; i++ {
				p, err := s.Place(placed, canvas, 100)
				require.NoError(t, err, "branch %d", i)
				require.Zero(t, stats.LastStats().RelaxStep, "branch %d", i)
				placed = append(placed, p)
			}
		})
	}
}

func TestPlace_InputErrors(t *testing.T) {
	s := placement.NewUniformSampler(placement.DefaultOptions())

	_, err := s.Place(nil, placement.Bounds{MinX: 1, MaxX: 0}, 10)
	assert.ErrorIs(t, err, placement.ErrInvalidBounds)

	_, err = s.Place(nil, canvas, -1)
	assert.ErrorIs(t, err, placement.ErrInvalidSeparation)

	_, err = s.Place(nil, canvas, math.NaN())
	assert.ErrorIs(t, err, placement.ErrInvalidSeparation)

	_, err = placement.New("spiral", placement.Options{})
	assert.ErrorIs(t, err, placement.ErrUnknownStrategy)
}

func TestOptionsNormalized(t *testing.T) {
	s := placement.NewUniformSampler(placement.Options{RelaxFactor: 3, RelaxSteps: -2})
	assert.Equal(t, placement.Options{
		MaxAttempts: placement.DefaultMaxAttempts,
		RelaxFactor: placement.DefaultRelaxFactor,
		RelaxSteps:  0,
		Seed:        placement.DefaultSeed,
	}, s.Options())

	// A partial Options keeps RelaxSteps at zero: the separation is never relaxed.
	strict := placement.NewNoiseSampler(placement.Options{MaxAttempts: 5, Seed: 7})
	assert.Equal(t, 0, strict.Options().RelaxSteps)
	assert.Equal(t, placement.DefaultRelaxFactor, strict.Options().RelaxFactor)

	pin := placement.Bounds{MinX: 10, MinY: 10, MaxX: 10, MaxY: 10}
	_, err := strict.Place([]placement.Point{{X: 10, Y: 10}}, pin, 100)
	require.ErrorIs(t, err, placement.ErrPlacementExhausted)
	assert.Equal(t, placement.Stats{Attempts: 5, RelaxStep: 0, Separation: 100}, strict.LastStats())
}

// TestPlaceProperties checks containment and separation for random requests.
func TestPlaceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("accepted points are inside bounds and separated", prop.ForAll(
		func(seed int64, n int, minSep float64, noise bool) bool {
			var s statsSampler
			opts := placement.Options{MaxAttempts: 200, Seed: seed}
			if noise {
				s = placement.NewNoiseSampler(opts)
			} else {
				s = placement.NewUniformSampler(opts)
			}
			var placed []placement.Point
			for i := 0; i < n; i++ {
				p, err := s.Place(placed, canvas, minSep)
				if err != nil {
					// Exhaustion is legal; it must never yield a point.
					return p == placement.Point{} && len(placed) > 0
				}
				if !canvas.Contains(p) {
					return false
				}
				sep := s.LastStats().Separation
				for _, q := range placed {
					if p.Dist(q) <= sep {
						return false
					}
				}
				placed = append(placed, p)
			}
			return true
		},
		gen.Int64(), gen.IntRange(1, 20), gen.Float64Range(0, 150), gen.Bool(),
	))

	properties.TestingRun(t)
}
