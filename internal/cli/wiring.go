package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/branchnet/config"
	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/journal"
	"github.com/katalvlaran/branchnet/metrics"
	"github.com/katalvlaran/branchnet/network"
)

// loadPlaces returns the configured gazetteer or the built-in districts.
func loadPlaces(cfg *config.Config) (*gazetteer.Gazetteer, error) {
	if cfg.Gazetteer.Path == "" {
		return gazetteer.Default(), nil
	}

	return gazetteer.LoadFile(cfg.Gazetteer.Path)
}

// openNetwork builds a session from cfg: placement, optional journal (restored
// before use), and the configured root branches. The returned close function
// releases the journal.
func openNetwork(ctx context.Context, cfg *config.Config, places *gazetteer.Gazetteer, reg *metrics.Registry) (*network.Session, func() error, error) {
	logger := loggerFromContext(ctx)

	sampler, err := cfg.Placement.Sampler()
	if err != nil {
		return nil, nil, err
	}
	opts := []network.Option{
		network.WithLogger(logger),
		network.WithMetrics(reg),
		network.WithSampler(sampler),
		network.WithBounds(cfg.Placement.Bounds()),
		network.WithMinSeparation(cfg.Placement.MinSeparation),
		network.WithOrigin(cfg.Network.OriginPoint()),
	}
	if cfg.Network.AppendOnly {
		opts = append(opts, network.WithAppendOnly())
	}

	closeFn := func() error { return nil }
	var j *journal.Journal
	if cfg.Journal.Enabled() {
		if j, err = journal.Open(cfg.Journal.Config(logger)); err != nil {
			return nil, nil, err
		}
		closeFn = j.Close
		opts = append(opts, network.WithJournal(j))
	}

	s := network.NewSession(opts...)
	if j != nil {
		p := newProgress(logger)
		if err := s.Restore(ctx, j); err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("restore journal: %w", err)
		}
		p.done(fmt.Sprintf("Restored %d branches", s.Len()))
	}

	if err := seedRoots(ctx, s, places, cfg.Network.Roots, logger); err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	return s, closeFn, nil
}

// seedRoots inserts the configured roots that the network does not hold yet.
func seedRoots(ctx context.Context, s *network.Session, places *gazetteer.Gazetteer, roots []string, logger *log.Logger) error {
	for _, name := range roots {
		if _, ok := s.Branch(name); ok {
			continue
		}
		c, err := places.Lookup(name)
		if err != nil {
			return fmt.Errorf("root branch: %w", err)
		}
		if _, err := s.Insert(ctx, name, c); err != nil {
			return fmt.Errorf("root branch: %w", err)
		}
		logger.Debug("root branch seeded", "branch", name)
	}

	return nil
}

// describeInsertError turns expected rejections into a user message. It returns
// false for errors that should abort the command.
func describeInsertError(name string, err error) (string, bool) {
	switch {
	case errors.Is(err, gazetteer.ErrUnknownPlace):
		return fmt.Sprintf("%s not found", name), true
	case errors.Is(err, network.ErrDuplicateNode):
		return fmt.Sprintf("%s is already connected", name), true
	case errors.Is(err, network.ErrInvalidCoordinate), errors.Is(err, network.ErrEmptyName):
		return fmt.Sprintf("%q rejected: %v", name, err), true
	case errors.Is(err, network.ErrPlacementExhausted):
		return fmt.Sprintf("no room left on the map for %s", name), true
	default:
		return "", false
	}
}
