package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dreandnought/TreeWatcher/internal/logging"
	"github.com/dreandnought/TreeWatcher/internal/ui/icons"
	"github.com/dreandnought/TreeWatcher/internal/ui/pretty"
	"github.com/dreandnought/TreeWatcher/pkg/config"
	"github.com/dreandnought/TreeWatcher/pkg/explore"
	"github.com/dreandnought/TreeWatcher/pkg/reporter"
)

type showFlags struct {
	depth    int
	format   string
	strategy string
	progress bool
	noIcons  bool
}

func newShowCommand() *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Reconstruct and display the tree from a listing file",
		Long: `Reconstruct the hierarchy encoded in a captured listing and print it
as a normalized tree.

Examples:
  treewatcher show tree_output.txt              # Full tree
  treewatcher show tree_output.txt --depth 2    # Two levels only
  treewatcher show tree_output.txt --format json
  treewatcher show tree_output.txt --strategy recursive`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.depth, "depth", -1,
		"levels to expand below the root (-1 for all, 0 for roots only)")
	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: text or json")
	cmd.Flags().StringVar(&flags.strategy, "strategy", "",
		"build strategy: stack or recursive")
	cmd.Flags().BoolVar(&flags.progress, "progress", false,
		"log build progress reports")
	cmd.Flags().BoolVar(&flags.noIcons, "no-icons", false,
		"render entry names without icons")

	return cmd
}

func runShow(cmd *cobra.Command, path string, flags *showFlags) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	applyShowFlags(cmd, cfg, flags)

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

	logger := logging.Default()
	logger.Debug("listing loaded",
		logging.FieldLines, result.Stats.LinesRead,
		logging.FieldBanners, result.Stats.BannerLines,
		logging.FieldSpacers, result.Stats.SpacerLines,
		logging.FieldItems, result.Stats.ItemsParsed,
		logging.FieldFolders, result.Stats.Folders,
		logging.FieldLeaves, result.Stats.Leaves,
		logging.FieldMaxDepth, result.Stats.MaxDepth,
	)

	if cfg.Format == config.FormatJSON {
		return reporter.WriteJSON(cmd.OutOrStdout(), result)
	}

	colorMode, _ := cmd.Flags().GetString("color")
	styles := pretty.NewStyles(pretty.ColorEnabled(colorMode, os.Stdout))

	var classifier *icons.Classifier
	if !cfg.NoIcons {
		classifier = icons.NewClassifier(cfg.Icons)
	}

	renderer := pretty.NewTreeRenderer(styles, classifier, cfg.Depth)
	if width, _, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && width > 0 {
		renderer.Width = width
	}

	// Expansion through the explorer happens here, on the command
	// goroutine, after the worker handed the forest over.
	explorer := explore.New(result.Forest)
	if err := renderer.Render(cmd.OutOrStdout(), explorer); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), styles.FormatStatsOneLine(result.Stats))
	return nil
}

// applyShowFlags overlays explicitly-set CLI flags onto the resolved
// configuration.
func applyShowFlags(cmd *cobra.Command, cfg *config.Config, flags *showFlags) {
	if cmd.Flags().Changed("depth") {
		cfg.Depth = flags.depth
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = flags.strategy
	}
	cfg.NoIcons = flags.noIcons
	cfg.Progress = flags.progress
}
