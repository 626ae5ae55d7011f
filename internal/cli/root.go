package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the dctopo CLI and returns an error if any command fails.
//
// The root command carries one subcommand per topology family. Logging
// defaults to info level on stderr; --verbose (-v) switches to debug. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dctopo",
		Short:        "dctopo draws scalable datacenter network topologies",
		Long:         `dctopo generates datacenter network topologies (fat-tree, Facebook's Fabric, and two abstraction levels of Google's Jupiter) as directed graphs and draws them as layered diagrams with optional link-capacity labels.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dctopo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFatTreeCmd())
	root.AddCommand(newFabricCmd())
	root.AddCommand(newJupiterCmd())
	root.AddCommand(newJupiterBlockCmd())

	return root.ExecuteContext(ctx)
}
