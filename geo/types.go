package geo

import (
	"errors"
	"fmt"
	"strconv"
)

// EarthRadiusKm is the mean Earth radius used by the distance model.
const EarthRadiusKm = 6371.0

// Valid coordinate ranges, in degrees.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrInvalidCoordinate indicates a latitude or longitude outside its valid range,
// or a non-finite value.
var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// Coordinate is a geographic position in signed decimal degrees.
type Coordinate struct {
	// Lat is the latitude, −90..90.
	Lat float64 `json:"lat" yaml:"lat" toml:"lat"`

	// Lon is the longitude, −180..180.
	Lon float64 `json:"lon" yaml:"lon" toml:"lon"`
}

// String renders the coordinate as "(lat, lon)".
func (c Coordinate) String() string {
	return "(" + strconv.FormatFloat(c.Lat, 'f', -1, 64) + ", " +
		strconv.FormatFloat(c.Lon, 'f', -1, 64) + ")"
}

// invalid wraps ErrInvalidCoordinate with the offending value.
func invalid(c Coordinate, what string) error {
	return fmt.Errorf("%w: %s out of range in %s", ErrInvalidCoordinate, what, c)
}
