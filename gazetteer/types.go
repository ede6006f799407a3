package gazetteer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/branchnet/geo"
)

// Sentinel errors for lookups and loading.
var (
	// ErrUnknownPlace indicates a lookup of a name the table does not hold.
	ErrUnknownPlace = errors.New("gazetteer: place not found")

	// ErrDuplicatePlace indicates Add of a name the table already holds.
	ErrDuplicatePlace = errors.New("gazetteer: duplicate place")

	// ErrEmptyName indicates a blank place name.
	ErrEmptyName = errors.New("gazetteer: empty place name")

	// ErrUnsupportedFormat indicates a file extension other than .toml, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("gazetteer: unsupported format")

	// ErrInvalidEntry indicates an entry that failed struct validation.
	ErrInvalidEntry = errors.New("gazetteer: invalid entry")
)

// Entry is one named place.
type Entry struct {
	Name string  `json:"name" toml:"name" yaml:"name" validate:"required,max=128"`
	Lat  float64 `json:"lat" toml:"lat" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `json:"lon" toml:"lon" yaml:"lon" validate:"gte=-180,lte=180"`
}

// Coordinate returns the entry position.
func (e Entry) Coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: e.Lat, Lon: e.Lon}
}

// Gazetteer is a concurrency-safe name → coordinate table.
type Gazetteer struct {
	mu     sync.RWMutex
	places map[string]geo.Coordinate
}

// New returns an empty table.
func New() *Gazetteer {
	return &Gazetteer{places: make(map[string]geo.Coordinate)}
}

// Normalize trims surrounding whitespace from a place name.
func Normalize(name string) string {
	return strings.TrimSpace(name)
}

// Add registers name at c.
//
// Errors: ErrEmptyName, ErrDuplicatePlace, geo.ErrInvalidCoordinate.
func (g *Gazetteer) Add(name string, c geo.Coordinate) error {
	name = Normalize(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := geo.Validate(c); err != nil {
		return fmt.Errorf("gazetteer: %q: %w", name, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.places[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicatePlace, name)
	}
	g.places[name] = c

	return nil
}

// Lookup returns the coordinate of name.
//
// Errors: ErrUnknownPlace.
func (g *Gazetteer) Lookup(name string) (geo.Coordinate, error) {
	name = Normalize(name)

	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.places[name]
	if !ok {
		return geo.Coordinate{}, fmt.Errorf("%w: %q", ErrUnknownPlace, name)
	}

	return c, nil
}

// Len returns the number of places.
func (g *Gazetteer) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.places)
}

// Names returns all place names in lexical order.
func (g *Gazetteer) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.places))
	for n := range g.places {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// Entries returns all places in lexical name order.
func (g *Gazetteer) Entries() []Entry {
	names := g.Names()

	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		c, ok := g.places[n]
		if !ok {
			continue
		}
		out = append(out, Entry{Name: n, Lat: c.Lat, Lon: c.Lon})
	}

	return out
}
