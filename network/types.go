package network

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/metrics"
	"github.com/katalvlaran/branchnet/mst"
	"github.com/katalvlaran/branchnet/placement"
)

// Errors surfaced by a Session. The aliases let callers match every insertion
// failure with a single import.
var (
	ErrInvalidCoordinate  = geo.ErrInvalidCoordinate
	ErrDuplicateNode      = core.ErrDuplicateNode
	ErrEmptyName          = core.ErrEmptyNodeID
	ErrNoPriorNodes       = mst.ErrNoPriorNodes
	ErrPlacementExhausted = placement.ErrPlacementExhausted

	// ErrJournal indicates the journal rejected an append. The insertion was not applied.
	ErrJournal = errors.New("network: journal append failed")

	// ErrNotEmpty indicates Restore on a session that already holds branches.
	ErrNotEmpty = errors.New("network: session is not empty")

	// ErrReplayOrder indicates a replayed entry whose sequence does not match its position.
	ErrReplayOrder = errors.New("network: replayed entry out of order")

	// ErrReplayDiverged indicates a restored tree that differs from one rebuilt
	// from the restored graph.
	ErrReplayDiverged = errors.New("network: replayed tree diverged from rebuild")
)

// Journal records accepted insertions. *journal.Journal implements it.
type Journal interface {
	Append(ctx context.Context, e journal.Entry) error
}

// Replayer yields recorded insertions in sequence order. *journal.Journal implements it.
type Replayer interface {
	Replay(ctx context.Context, fn func(journal.Entry) error) error
}

// Branch is one inserted location.
type Branch struct {
	Seq      int             `json:"seq"`
	Name     string          `json:"name"`
	Coord    geo.Coordinate  `json:"coord"`
	Position placement.Point `json:"position"`

	// ConnectedTo is the branch this one attached to when it was inserted; empty for
	// the first branch. Later insertions may rewire the tree, see Snapshot.Edges.
	ConnectedTo string `json:"connected_to,omitempty"`

	// DistanceKm is the length of the attachment edge.
	DistanceKm float64 `json:"distance_km"`
}

// Result describes one accepted insertion.
type Result struct {
	Seq      int
	Name     string
	Coord    geo.Coordinate
	Position placement.Point

	// Edge is the attachment edge; nil for the first branch.
	Edge *mst.Edge

	// Removed lists tree edges that the insertion displaced.
	Removed []mst.Edge

	// Branches and TotalWeight describe the tree after the insertion.
	Branches    int
	TotalWeight float64
}

// ConnectedTo returns the existing branch the new one attached to, or "" for the first.
func (r Result) ConnectedTo() string {
	if r.Edge == nil {
		return ""
	}
	if r.Edge.From == r.Name {
		return r.Edge.To
	}

	return r.Edge.From
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	ID          string     `json:"id"`
	Version     uint64     `json:"version"`
	Branches    []Branch   `json:"branches"`
	Edges       []mst.Edge `json:"edges"`
	TotalWeight float64    `json:"total_weight_km"`
}

// Option configures a Session.
type Option func(s *Session)

// WithSampler sets the screen placement strategy. Without one, positions stay zero.
func WithSampler(sp placement.Sampler) Option {
	return func(s *Session) { s.sampler = sp }
}

// WithBounds sets the area positions are drawn from.
func WithBounds(b placement.Bounds) Option {
	return func(s *Session) { s.bounds = b }
}

// WithMinSeparation sets the required distance between positions.
func WithMinSeparation(d float64) Option {
	return func(s *Session) { s.minSep = d }
}

// WithOrigin places the first branch at p instead of sampling it.
func WithOrigin(p placement.Point) Option {
	return func(s *Session) {
		s.origin = p
		s.hasOrigin = true
	}
}

// WithJournal records every accepted insertion in j.
func WithJournal(j Journal) Option {
	return func(s *Session) { s.journal = j }
}

// WithMetrics reports insert outcomes to r.
func WithMetrics(r *metrics.Registry) Option {
	return func(s *Session) { s.metrics = r }
}

// WithLogger sets the session logger. Nil selects log.Default().
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDistance replaces the haversine distance model.
func WithDistance(fn core.DistanceFunc) Option {
	return func(s *Session) { s.distance = fn }
}

// WithAppendOnly keeps the first attachment edge of every branch and never rewires.
func WithAppendOnly() Option {
	return func(s *Session) { s.appendOnly = true }
}

// WithClock sets the time source for journal timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}
