// Package cli implements the branchnet command-line interface.
//
// # Commands
//
//   - connect: insert branches by name and print the resulting network
//   - serve: run the HTTP API over a journaled network
//   - places: list the gazetteer
//   - verify: build a network and check it against a from-scratch spanning tree
//
// # Configuration and logging
//
// Every command reads --config (TOML, see package config) over the built-in
// defaults. --verbose switches the log to debug level. The logger travels
// through context.Context.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/branchnet/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

// Execute runs the CLI with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "branchnet",
		Short:         "branchnet connects named locations into a minimum spanning network",
		Long:          `branchnet inserts locations one at a time and keeps the network of links between them a minimum spanning tree by great-circle distance.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if a.configPath != "" {
				var err error
				if cfg, err = config.Load(a.configPath); err != nil {
					return err
				}
			}
			a.cfg = cfg

			level := cfg.Log.ParseLevel()
			if a.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("branchnet %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a TOML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.connectCommand())
	root.AddCommand(a.serveCommand())
	root.AddCommand(a.placesCommand())
	root.AddCommand(a.verifyCommand())

	return root
}
