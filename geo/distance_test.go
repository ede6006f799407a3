package geo_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/geo"
)

const kmPerDegree = geo.EarthRadiusKm * math.Pi / 180

func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		name string
		a, b geo.Coordinate
		want float64
	}{
		{"one degree on equator", geo.Coordinate{Lat: 0, Lon: 0}, geo.Coordinate{Lat: 0, Lon: 1}, kmPerDegree},
		{"one degree of latitude", geo.Coordinate{Lat: 10, Lon: 20}, geo.Coordinate{Lat: 11, Lon: 20}, kmPerDegree},
		{"antipodal on equator", geo.Coordinate{Lat: 0, Lon: 0}, geo.Coordinate{Lat: 0, Lon: 180}, math.Pi * geo.EarthRadiusKm},
		{"pole to pole", geo.Coordinate{Lat: 90, Lon: 0}, geo.Coordinate{Lat: -90, Lon: 0}, math.Pi * geo.EarthRadiusKm},
		{"across the antimeridian", geo.Coordinate{Lat: 0, Lon: 179.5}, geo.Coordinate{Lat: 0, Lon: -179.5}, kmPerDegree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geo.Distance(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestDistance_ColomboKandy(t *testing.T) {
	colombo := geo.Coordinate{Lat: 6.9271, Lon: 79.9612}
	kandy := geo.Coordinate{Lat: 7.2906, Lon: 80.6337}

	d, err := geo.Distance(colombo, kandy)
	require.NoError(t, err)
	// Straight-line distance between the two district centres is about 84.5 km.
	assert.InDelta(t, 84.5, d, 1.0)
}

func TestDistance_SelfIsZero(t *testing.T) {
	c := geo.Coordinate{Lat: 8.5678, Lon: 81.2331}
	d, err := geo.Distance(c, c)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestValidate_Ranges(t *testing.T) {
	valid := []geo.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 90, Lon: 180},
		{Lat: -90, Lon: -180},
	}
	for _, c := range valid {
		assert.NoError(t, geo.Validate(c), c.String())
	}

	invalid := []geo.Coordinate{
		{Lat: 90.0001, Lon: 0},
		{Lat: -91, Lon: 0},
		{Lat: 0, Lon: 180.5},
		{Lat: 0, Lon: -181},
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.NaN()},
		{Lat: math.Inf(1), Lon: 0},
		{Lat: 0, Lon: math.Inf(-1)},
	}
	for _, c := range invalid {
		assert.ErrorIs(t, geo.Validate(c), geo.ErrInvalidCoordinate, c.String())
	}
}

func TestDistance_RejectsInvalid(t *testing.T) {
	ok := geo.Coordinate{Lat: 1, Lon: 1}
	bad := geo.Coordinate{Lat: 100, Lon: 1}

	_, err := geo.Distance(ok, bad)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	_, err = geo.Distance(bad, ok)
	assert.ErrorIs(t, err, geo.ErrInvalidCoordinate)

	assert.Panics(t, func() { geo.MustDistance(bad, ok) })
}

func TestBearing(t *testing.T) {
	origin := geo.Coordinate{Lat: 0, Lon: 0}
	assert.InDelta(t, 90, geo.Bearing(origin, geo.Coordinate{Lat: 0, Lon: 1}), 1e-9)
	assert.InDelta(t, 0, geo.Bearing(origin, geo.Coordinate{Lat: 1, Lon: 0}), 1e-9)
	assert.InDelta(t, 270, geo.Bearing(origin, geo.Coordinate{Lat: 0, Lon: -1}), 1e-9)
	assert.InDelta(t, 180, geo.Bearing(origin, geo.Coordinate{Lat: -1, Lon: 0}), 1e-9)
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(6.9271, 79.9612)", geo.Coordinate{Lat: 6.9271, Lon: 79.9612}.String())
}

// TestDistanceProperties checks symmetry, identity and range for random valid pairs.
func TestDistanceProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	lat := gen.Float64Range(geo.MinLatitude, geo.MaxLatitude)
	lon := gen.Float64Range(geo.MinLongitude, geo.MaxLongitude)

	properties.Property("distance is symmetric", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			a := geo.Coordinate{Lat: lat1, Lon: lon1}
			b := geo.Coordinate{Lat: lat2, Lon: lon2}
			return geo.MustDistance(a, b) == geo.MustDistance(b, a)
		},
		lat, lon, lat, lon,
	))

	properties.Property("distance to self is zero", prop.ForAll(
		func(lat1, lon1 float64) bool {
			a := geo.Coordinate{Lat: lat1, Lon: lon1}
			return geo.MustDistance(a, a) == 0
		},
		lat, lon,
	))

	properties.Property("distance is bounded by half the circumference", prop.ForAll(
		func(lat1, lon1, lat2, lon2 float64) bool {
			d := geo.MustDistance(geo.Coordinate{Lat: lat1, Lon: lon1}, geo.Coordinate{Lat: lat2, Lon: lon2})
			return d >= 0 && d <= math.Pi*geo.EarthRadiusKm+1e-6
		},
		lat, lon, lat, lon,
	))

	properties.TestingRun(t)
}
