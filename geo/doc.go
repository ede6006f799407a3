// Package geo provides the distance model used to weight branch links:
// great-circle distance between two points on a spherical Earth.
//
// What & Why
//
//   - Every pair of branches is joined by an implicit edge whose weight is the
//     surface distance between them, in kilometres.
//   - The haversine form is numerically stable for short distances (neighbouring
//     districts are only tens of kilometres apart), unlike the spherical law of cosines.
//
// Formula
//
//	a = sin²(Δφ/2) + cos φ1 · cos φ2 · sin²(Δλ/2)
//	c = 2 · atan2(√a, √(1−a))
//	d = R · c,   R = 6371 km
//
// Contract
//
//   - Distance(a, b) == Distance(b, a) for all valid a, b.
//   - Distance(a, a) == 0.
//   - Latitude must lie in [−90, 90] and longitude in [−180, 180]; NaN and ±Inf are
//     rejected. Violations return ErrInvalidCoordinate.
//
// The package has no state and never logs.
package geo
