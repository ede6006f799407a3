package geo

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// Validate reports whether c lies inside the valid latitude/longitude ranges.
//
// Errors:
//   - ErrInvalidCoordinate (wrapped) if either component is out of range, NaN, or infinite.
//
// Complexity: O(1).
func Validate(c Coordinate) error {
	if math.IsNaN(c.Lat) || c.Lat < MinLatitude || c.Lat > MaxLatitude {
		return invalid(c, "latitude")
	}
	if math.IsNaN(c.Lon) || c.Lon < MinLongitude || c.Lon > MaxLongitude {
		return invalid(c, "longitude")
	}

	return nil
}

// Distance returns the great-circle distance between a and b in kilometres.
//
// Both coordinates are validated first; on failure no distance is computed.
//
// Errors:
//   - ErrInvalidCoordinate (wrapped) if a or b is out of range.
//
// Complexity: O(1).
func Distance(a, b Coordinate) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	return Haversine(a, b), nil
}

// MustDistance is like Distance but panics on invalid input.
// Intended for literals and tests where the coordinates are known to be valid.
func MustDistance(a, b Coordinate) float64 {
	d, err := Distance(a, b)
	if err != nil {
		panic(err)
	}

	return d
}

// Haversine computes the great-circle distance without validating its inputs.
//
// Identical inputs short-circuit to an exact zero. Otherwise the differences are
// squared through sin², so swapping a and b yields the same value bit for bit.
//
// Complexity: O(1).
func Haversine(a, b Coordinate) float64 {
	if a == b {
		return 0
	}

	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dPhi := (b.Lat - a.Lat) * degToRad
	dLambda := (b.Lon - a.Lon) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)

	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	// Rounding can push h a hair outside [0,1] for antipodal points.
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bearing returns the initial bearing from a to b in degrees, normalised to [0, 360).
// Used for reporting the direction of a new link; it plays no part in weighting.
//
// Complexity: O(1).
func Bearing(a, b Coordinate) float64 {
	phi1 := a.Lat * degToRad
	phi2 := b.Lat * degToRad
	dLambda := (b.Lon - a.Lon) * degToRad

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)

	theta := math.Atan2(y, x) / degToRad

	return math.Mod(theta+360, 360)
}
