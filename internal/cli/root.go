// Package cli provides the Cobra command structure for treewatcher.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dreandnought/TreeWatcher/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root treewatcher command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "treewatcher",
		Short: "Reconstruct directory trees from `tree` command output",
		Long: `treewatcher ingests the textual output of directory-listing commands
(` + "`tree /F`" + ` and friends) and reconstructs the hierarchy their connector
glyphs encode. It tolerates the format's many dialects: Unicode box
characters, ASCII approximations, compressed indentation, and GBK
encoded captures from cmd.exe.

Capture a listing and explore it:

  tree /F > tree_output.txt
  treewatcher show tree_output.txt`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flag parse failures exit with the usage code, not the generic one.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Join(errUsage, err)
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newShowCommand())
	rootCmd.AddCommand(newStatCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// exactArgs wraps cobra.ExactArgs so argument-count failures map to the
// usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.Join(errUsage, err)
		}
		return nil
	}
}
