package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/branchnet/gazetteer"
	"github.com/katalvlaran/branchnet/metrics"
	"github.com/katalvlaran/branchnet/server"
)

// errRejected reports that some branches of a connect run were rejected.
var errRejected = errors.New("some branches were not connected")

func (a *app) connectCommand() *cobra.Command {
	var (
		journalPath string
		appendOnly  bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "connect [place...]",
		Short: "Connect places to the network and print it",
		Long: `Connect inserts each named place, in order, after the configured root branches.
Coordinates come from the gazetteer. With --journal the network is stored and
later runs continue from it.`,
		Example: `  branchnet connect Kandy Galle Jaffna
  branchnet connect --journal ./net Matara`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			cfg := *a.cfg
			if journalPath != "" {
				cfg.Journal.Path = journalPath
			}
			if appendOnly {
				cfg.Network.AppendOnly = true
			}

			places, err := loadPlaces(&cfg)
			if err != nil {
				return err
			}
			s, closeFn, err := openNetwork(ctx, &cfg, places, nil)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			rejected := 0
			for _, name := range args {
				c, err := places.Lookup(name)
				if err == nil {
					_, err = s.Insert(ctx, name, c)
				}
				if err == nil {
					continue
				}
				msg, ok := describeInsertError(name, err)
				if !ok {
					return err
				}
				printWarning(out, "%s", msg)
				rejected++
			}

			renderBranches(out, s.Snapshot())
			if strict && rejected > 0 {
				return fmt.Errorf("%w: %d of %d", errRejected, rejected, len(args))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "", "journal directory (overrides the config)")
	cmd.Flags().BoolVar(&appendOnly, "append-only", false, "never rewire earlier links")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail if any place is rejected")

	return cmd
}

func (a *app) serveCommand() *cobra.Command {
	var (
		addr        string
		journalPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the network over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := *a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if journalPath != "" {
				cfg.Journal.Path = journalPath
			}

			places, err := loadPlaces(&cfg)
			if err != nil {
				return err
			}
			reg := metrics.NewRegistry()
			s, closeFn, err := openNetwork(ctx, &cfg, places, reg)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			srv := server.New(s, places, reg, logger, server.WithTimeouts(
				cfg.Server.ReadTimeout.Std(),
				cfg.Server.WriteTimeout.Std(),
				cfg.Server.ShutdownTimeout.Std(),
			))

			return srv.Run(ctx, cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides the config)")
	cmd.Flags().StringVar(&journalPath, "journal", "", "journal directory (overrides the config)")

	return cmd
}

func (a *app) placesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "List the places the gazetteer knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			places, err := loadPlaces(a.cfg)
			if err != nil {
				return err
			}
			renderPlaces(cmd.OutOrStdout(), places.Entries())

			return nil
		},
	}
}

func (a *app) verifyCommand() *cobra.Command {
	var appendOnly bool

	cmd := &cobra.Command{
		Use:   "verify [place...]",
		Short: "Build a network and check it is a minimum spanning tree",
		Long: `Verify connects the given places (all gazetteer places when none are given)
without a journal and compares the incremental tree with one computed from scratch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			cfg := *a.cfg
			cfg.Journal.Path, cfg.Journal.InMemory = "", false
			if appendOnly {
				cfg.Network.AppendOnly = true
			}

			places, err := loadPlaces(&cfg)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = places.Names()
				if places.Len() == len(gazetteer.DefaultOrder()) {
					names = gazetteer.DefaultOrder()
				}
			}

			s, closeFn, err := openNetwork(ctx, &cfg, places, nil)
			if err != nil {
				return err
			}
			defer func() { _ = closeFn() }()

			for _, name := range names {
				if _, ok := s.Branch(name); ok {
					continue
				}
				c, err := places.Lookup(name)
				if err != nil {
					return err
				}
				if _, err := s.Insert(ctx, name, c); err != nil {
					return err
				}
			}

			snap := s.Snapshot()
			if err := s.Verify(); err != nil {
				printError(out, "%v", err)
				return err
			}
			printSuccess(out, "minimum spanning tree verified: %d branches, %.1f km", len(snap.Branches), snap.TotalWeight)

			return nil
		},
	}

	cmd.Flags().BoolVar(&appendOnly, "append-only", false, "verify the append-only tree instead")

	return cmd
}
