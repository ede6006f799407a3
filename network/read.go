package network

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/mst"
	"github.com/katalvlaran/branchnet/placement"
)

// Len returns the number of branches.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.branches)
}

// Branch returns the branch called name.
func (s *Session) Branch(name string) (Branch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[name]
	if !ok {
		return Branch{}, false
	}

	return s.branches[i], true
}

// Snapshot returns a consistent copy of the session state.
// Version equals the number of accepted insertions.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	branches := make([]Branch, len(s.branches))
	copy(branches, s.branches)

	return Snapshot{
		ID:          s.id,
		Version:     uint64(len(s.branches)),
		Branches:    branches,
		Edges:       s.tree.Edges(),
		TotalWeight: s.tree.TotalWeight(),
	}
}

// Verify checks the current tree against a from-scratch minimum spanning tree.
func (s *Session) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return mst.Verify(s.tree, s.graph)
}

// Restore replays recorded insertions into an empty session, reusing their stored
// positions. Replayed entries are not written back to the session journal. The
// replayed tree is then checked against one rebuilt from the restored graph.
//
// Restore should run before the session is shared; concurrent inserts would
// interleave with the replayed sequence and fail it with ErrReplayOrder.
//
// Errors: ErrNotEmpty, ErrReplayOrder, ErrReplayDiverged, any Insert error, errors from r.
func (s *Session) Restore(ctx context.Context, r Replayer) error {
	if n := s.Len(); n != 0 {
		return fmt.Errorf("%w: %d branches", ErrNotEmpty, n)
	}

	var n int
	err := r.Replay(ctx, func(e journal.Entry) error {
		if e.Seq != uint64(n) {
			return fmt.Errorf("%w: entry %d at position %d", ErrReplayOrder, e.Seq, n)
		}
		pos := placement.Point{X: e.X, Y: e.Y}
		res, err := s.insert(ctx, e.Name, geo.Coordinate{Lat: e.Lat, Lon: e.Lon}, &pos, nil)
		if err != nil {
			return fmt.Errorf("network: replay %q: %w", e.Name, err)
		}
		if res.Seq != n {
			return fmt.Errorf("%w: %q stored as %d at position %d", ErrReplayOrder, e.Name, res.Seq, n)
		}
		n++

		return nil
	})
	if err != nil {
		return err
	}
	if err := s.crossCheck(); err != nil {
		return err
	}

	snap := s.Snapshot()
	s.metrics.SetTree(len(snap.Branches), snap.TotalWeight)
	s.logger.Info("network restored", "branches", n, "km", fmt.Sprintf("%.1f", snap.TotalWeight))

	return nil
}

// crossCheck rebuilds the tree from the graph in insertion order and compares it
// with the incrementally built one.
func (s *Session) crossCheck() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rebuilt, err := mst.Rebuild(s.graph, s.treeOpts...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReplayDiverged, err)
	}
	if !slices.Equal(rebuilt.Edges(), s.tree.Edges()) {
		return fmt.Errorf("%w: rebuilt %d edges (%.3f km), replayed %d edges (%.3f km)",
			ErrReplayDiverged, rebuilt.Len(), rebuilt.TotalWeight(), s.tree.Len(), s.tree.TotalWeight())
	}

	return nil
}
