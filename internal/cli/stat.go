package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreandnought/TreeWatcher/internal/ui/pretty"
	"github.com/dreandnought/TreeWatcher/pkg/config"
	"github.com/dreandnought/TreeWatcher/pkg/reporter"
)

type statFlags struct {
	format   string
	strategy string
	progress bool
}

func newStatCommand() *cobra.Command {
	flags := &statFlags{}

	cmd := &cobra.Command{
		Use:   "stat <file>",
		Short: "Show statistics about a listing file",
		Long: `Parse and build the tree without rendering it, then report the
listing and tree statistics: line counts, folder and file totals,
and maximum depth.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStat(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: text or json")
	cmd.Flags().StringVar(&flags.strategy, "strategy", "",
		"build strategy: stack or recursive")
	cmd.Flags().BoolVar(&flags.progress, "progress", false,
		"log build progress reports")

	return cmd
}

func runStat(cmd *cobra.Command, path string, flags *statFlags) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = flags.strategy
	}
	cfg.Progress = flags.progress

	if !cfg.Format.IsValid() {
		return errors.Join(errUsage, fmt.Errorf("invalid format %q: must be text or json", cfg.Format))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := loadListing(ctx, path, cfg)
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatJSON {
		return reporter.WriteJSON(cmd.OutOrStdout(), result)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.ColorEnabled(colorMode, os.Stdout))

	fmt.Fprint(cmd.OutOrStdout(), styles.FormatStatsBlock(result.Stats))
	return nil
}
