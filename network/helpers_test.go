package network_test

import (
	"context"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/network"
)

// quiet discards session logs.
var quiet = log.New(io.Discard)

// flatDistance uses |ΔLon| as the weight, giving hand-checkable scenarios.
func flatDistance(a, b geo.Coordinate) (float64, error) {
	return math.Abs(a.Lon - b.Lon), nil
}

// lon places a fixture on the flat axis.
func lon(x float64) geo.Coordinate { return geo.Coordinate{Lon: x} }

// district resolves a Sri Lanka district from the built-in table.
func district(t testing.TB, name string) geo.Coordinate {
	t.Helper()
	c, err := gazetteer.Default().Lookup(name)
	require.NoError(t, err)
	return c
}

// mustInsert inserts and fails the test on error.
func mustInsert(t *testing.T, s *network.Session, name string, c geo.Coordinate) network.Result {
	t.Helper()
	res, err := s.Insert(context.Background(), name, c)
	require.NoError(t, err, "Insert(%s)", name)
	return res
}

// insertDistricts inserts the first n districts in their default order.
func insertDistricts(t *testing.T, s *network.Session, n int) {
	t.Helper()
	for _, name := range gazetteer.DefaultOrder()[:n] {
		mustInsert(t, s, name, district(t, name))
	}
}

// stripID drops the random session ID so snapshots of different sessions compare.
func stripID(s network.Snapshot) network.Snapshot {
	s.ID = ""
	return s
}

// failingJournal rejects appends while fail is set and records accepted entries.
type failingJournal struct {
	fail    bool
	entries []journal.Entry
}

var errDiskFull = errors.New("disk full")

func (j *failingJournal) Append(_ context.Context, e journal.Entry) error {
	if j.fail {
		return errDiskFull
	}
	j.entries = append(j.entries, e)
	return nil
}

// sliceReplayer replays a fixed list of entries.
type sliceReplayer []journal.Entry

func (r sliceReplayer) Replay(_ context.Context, fn func(journal.Entry) error) error {
	for _, e := range r {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}
