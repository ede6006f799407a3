package network

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/branchnet/core"
	"github.com/katalvlaran/branchnet/geo"
	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/metrics"
	"github.com/katalvlaran/branchnet/mst"
	"github.com/katalvlaran/branchnet/placement"
)

// statsReporter is implemented by the samplers of package placement.
type statsReporter interface {
	LastStats() placement.Stats
}

// Session is a growing branch network. Safe for concurrent use.
//
// mu guards every field below it. Graph and tree have their own locks, but all
// writes go through mu so they never interleave.
type Session struct {
	id string

	// Configuration
	sampler    placement.Sampler
	bounds     placement.Bounds
	minSep     float64
	origin     placement.Point
	hasOrigin  bool
	journal    Journal
	metrics    *metrics.Registry
	logger     *log.Logger
	distance   core.DistanceFunc
	appendOnly bool
	treeOpts   []mst.Option
	now        func() time.Time

	mu        sync.RWMutex
	graph     *core.Graph
	tree      *mst.Builder
	branches  []Branch
	index     map[string]int
	positions []placement.Point
}

// NewSession returns an empty session with a fresh random ID.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		logger: log.Default(),
		now:    time.Now,
		index:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.appendOnly {
		s.treeOpts = append(s.treeOpts, mst.WithAppendOnly())
	}
	s.graph = core.NewGraph(core.WithDistance(s.distance))
	s.tree = mst.NewBuilder(s.graph, s.treeOpts...)
	s.logger = s.logger.With("session", s.id[:8])

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Insert adds a branch and connects it to the network.
//
// The name is trimmed of surrounding spaces. On success the Result carries the
// attachment edge (nil for the first branch) and any edges the insertion displaced.
//
// Errors:
//   - ErrEmptyName, ErrInvalidCoordinate, ErrDuplicateNode: rejected input.
//   - ErrPlacementExhausted: no screen position within the retry budget.
//   - ErrJournal: the journal refused the entry.
//   - ctx.Err() if ctx is done before the session lock is taken.
//
// Every error leaves the session unchanged.
func (s *Session) Insert(ctx context.Context, name string, c geo.Coordinate) (Result, error) {
	start := time.Now()
	name = strings.TrimSpace(name)

	res, err := s.insert(ctx, name, c, nil, s.journal)
	s.observe(name, res, err, time.Since(start))

	return res, err
}

// insert runs one insertion. A non-nil pos skips placement; a nil j skips the journal.
func (s *Session) insert(ctx context.Context, name string, c geo.Coordinate, pos *placement.Point, j Journal) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stage 1: validate and stage the node without storing it.
	ins, err := s.graph.Prepare(name, c)
	if err != nil {
		return Result{}, err
	}
	seq := ins.Seq()

	// Stage 2: screen position.
	var p placement.Point
	if pos != nil {
		p = *pos
	} else if p, err = s.place(seq); err != nil {
		return Result{}, fmt.Errorf("place %q: %w", name, err)
	}

	// Stage 3: journal.
	if j != nil {
		entry := journal.Entry{
			Seq:  uint64(seq),
			Name: name,
			Lat:  c.Lat,
			Lon:  c.Lon,
			X:    p.X,
			Y:    p.Y,
			At:   s.now().UTC(),
		}
		if err := j.Append(ctx, entry); err != nil {
			return Result{}, fmt.Errorf("%w: %q: %w", ErrJournal, name, err)
		}
	}

	// Stage 4: commit. Nothing else writes to the graph, so this cannot go stale.
	if err := ins.Commit(); err != nil {
		return Result{}, fmt.Errorf("network: commit %q: %w", name, err)
	}

	res := Result{Seq: seq, Name: name, Coord: c, Position: p}
	branch := Branch{Seq: seq, Name: name, Coord: c, Position: p}

	// Stage 5: tree.
	if seq > 0 {
		step, err := s.tree.ExtendStep(name)
		if err != nil {
			return Result{}, fmt.Errorf("network: extend %q: %w", name, err)
		}
		edge := step.Edge
		res.Edge = &edge
		res.Removed = step.Removed
		branch.ConnectedTo = res.ConnectedTo()
		branch.DistanceKm = edge.Weight
	}

	s.branches = append(s.branches, branch)
	s.index[name] = seq
	s.positions = append(s.positions, p)
	res.Branches = len(s.branches)
	res.TotalWeight = s.tree.TotalWeight()

	return res, nil
}

// place picks the position of branch seq. Caller must hold mu.
func (s *Session) place(seq int) (placement.Point, error) {
	if seq == 0 && s.hasOrigin && (s.sampler == nil || s.bounds.Contains(s.origin)) {
		return s.origin, nil
	}
	if s.sampler == nil {
		return placement.Point{}, nil
	}

	p, err := s.sampler.Place(s.positions, s.bounds, s.minSep)
	if sr, ok := s.sampler.(statsReporter); ok {
		s.metrics.RecordPlacement(sr.LastStats().Attempts)
	}

	return p, err
}

// observe reports one Insert outcome to metrics and the log.
func (s *Session) observe(name string, res Result, err error, d time.Duration) {
	s.metrics.RecordInsert(statusOf(err), d)
	if err != nil {
		s.logger.Warn("insert rejected", "branch", name, "err", err)

		return
	}

	if res.Edge != nil {
		s.metrics.RecordEdge(res.Edge.Weight, len(res.Removed))
		s.logger.Debug("branch connected",
			"branch", res.Name, "to", res.ConnectedTo(),
			"km", fmt.Sprintf("%.1f", res.Edge.Weight), "rewired", len(res.Removed))
	} else {
		s.logger.Debug("root branch placed", "branch", res.Name, "x", res.Position.X, "y", res.Position.Y)
	}
	s.metrics.SetTree(res.Branches, res.TotalWeight)
}

// statusOf maps an Insert error to a metrics status label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, ErrDuplicateNode):
		return metrics.StatusDuplicate
	case errors.Is(err, ErrInvalidCoordinate), errors.Is(err, ErrEmptyName):
		return metrics.StatusInvalid
	case errors.Is(err, ErrPlacementExhausted):
		return metrics.StatusPlacement
	case errors.Is(err, ErrJournal):
		return metrics.StatusJournal
	default:
		return metrics.StatusError
	}
}
