// Package network ties the branch graph, the incremental spanning tree, screen
// placement and the insertion journal into one Session.
//
// A Session is the unit a CLI run or an HTTP server owns. It serializes insertions,
// so callers may share it freely between goroutines:
//
//	s := network.NewSession(network.WithSampler(sampler), network.WithJournal(j))
//	res, err := s.Insert(ctx, "Kandy", geo.Coordinate{Lat: 7.2906, Lon: 80.6337})
//
// Insert runs these steps under the session lock:
//
//  1. Stage the node in the graph (name, coordinate, duplicate and weight checks).
//  2. Choose a screen position with the sampler (first branch: the origin, if set).
//  3. Append the insertion to the journal.
//  4. Commit the staged node.
//  5. Extend the spanning tree (skipped for the first branch).
//
// A failure in steps 1 to 3 leaves the session exactly as it was. Steps 4 and 5
// cannot fail while the session is the only writer of its graph.
//
// Reads (Snapshot, Branch, Len, Verify) take the read lock and return copies.
//
// Errors:
//
//	ErrInvalidCoordinate  – latitude/longitude out of range (alias of geo's sentinel)
//	ErrDuplicateNode      – name already inserted (alias of core's sentinel)
//	ErrEmptyName          – blank name (alias of core's sentinel)
//	ErrNoPriorNodes       – returned by the tree for a first node; Insert never surfaces it
//	ErrPlacementExhausted – no screen position found (alias of placement's sentinel)
//	ErrJournal            – the journal rejected the append
//	ErrNotEmpty           – Restore into a session that already has branches
//	ErrReplayOrder        – a replayed entry does not match its position
//	ErrReplayDiverged     – the replayed tree differs from one rebuilt from the graph
package network
