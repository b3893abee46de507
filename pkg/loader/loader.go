// Package loader turns decoded listing lines into a forest. It owns
// header skipping, root detection, phase orchestration, and progress
// reporting; the per-line parsing and tree assembly live in treetext
// and treeast.
package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/dreandnought/TreeWatcher/pkg/treeast"
	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

// ErrNoRoot is returned when the input contains only banner lines or is
// empty after header skipping: there is no tree structure to build.
var ErrNoRoot = errors.New("loader: no tree structure found")

// Strategy selects the forest-building algorithm. Both strategies
// produce structurally identical forests.
type Strategy string

const (
	// StrategyStack uses incremental stack-based insertion.
	StrategyStack Strategy = "stack"
	// StrategyRecursive uses recursive descent over a lookahead cursor.
	StrategyRecursive Strategy = "recursive"
)

// IsValid reports whether the strategy is one of the known values.
func (s Strategy) IsValid() bool {
	return s == StrategyStack || s == StrategyRecursive
}

// Options controls a load operation.
type Options struct {
	// Strategy selects the builder variant. Defaults to StrategyStack.
	Strategy Strategy

	// Progress observes throttled progress reports. May be nil.
	Progress ProgressFunc
}

// Stats captures aggregate information about one load.
type Stats struct {
	// LinesRead is the number of input lines, banners included.
	LinesRead int

	// BannerLines is the number of header lines skipped before the root.
	BannerLines int

	// ItemsParsed is the number of items placed into the forest.
	ItemsParsed int

	// SpacerLines is the number of lines that carried no entry
	// (blank lines and connector-only lines).
	SpacerLines int

	// Folders and Leaves count nodes by structural classification.
	Folders int
	Leaves  int

	// MaxDepth is the deepest structural depth in the forest.
	MaxDepth int
}

// Result is the outcome of a load: an immutable forest plus stats.
// Once returned, the forest is never mutated by this package.
type Result struct {
	Forest *treeast.Forest
	Stats  Stats
}

// cancelCheckInterval is how many lines are processed between context
// cancellation checks.
const cancelCheckInterval = 1024

// Load parses lines and builds a forest. Lines must already be decoded
// and in original order; trailing whitespace is ignored. It returns
// ErrNoRoot when nothing remains after header skipping.
//
// Load is synchronous and CPU-bound. Callers driving an interactive
// loop should run it through a Service (or their own goroutine) rather
// than on the primary line of control.
func Load(ctx context.Context, lines []string, opts Options) (*Result, error) {
	strategy := opts.Strategy
	if strategy == "" {
		strategy = StrategyStack
	}
	if !strategy.IsValid() {
		return nil, fmt.Errorf("loader: unknown strategy %q", strategy)
	}

	stats := Stats{LinesRead: len(lines)}

	items, err := parseItems(ctx, lines, opts.Progress, &stats)
	if err != nil {
		return nil, err
	}

	forest, err := buildForest(ctx, items, strategy, opts.Progress)
	if err != nil {
		return nil, err
	}

	stats.ItemsParsed = len(items)
	stats.MaxDepth = forest.MaxDepth()
	forest.Walk(func(n *treeast.Node) error {
		if n.IsFolder() {
			stats.Folders++
		} else {
			stats.Leaves++
		}
		return nil
	})

	// The populating phase covers handing the finished roots over; the
	// forest is already built, so this is bookkeeping for observers that
	// key UI state off phase transitions.
	track := newTracker(opts.Progress, PhasePopulating, len(forest.Roots))
	for done := range forest.Roots {
		track.step(done + 1)
	}
	track.finish()

	return &Result{Forest: forest, Stats: stats}, nil
}

// parseItems runs the parsing phase: skip banners, take the first
// remaining line verbatim as the depth-0 root, and parse the rest.
//
// Parsed depths after the root are shifted down one level so that every
// subsequent entry nests under the root, matching how the listing tools
// print the top path without connectors. The builders themselves stay
// generic over arbitrary depth sequences.
func parseItems(ctx context.Context, lines []string, progress ProgressFunc, stats *Stats) ([]treetext.Item, error) {
	start := 0
	for start < len(lines) && treetext.IsBanner(lines[start]) {
		start++
	}
	stats.BannerLines = start

	if start >= len(lines) {
		return nil, ErrNoRoot
	}

	total := len(lines) - start
	track := newTracker(progress, PhaseParsing, total)

	items := make([]treetext.Item, 0, total)
	items = append(items, treetext.Item{Depth: 0, Name: lines[start]})

	for offset, line := range lines[start+1:] {
		done := offset + 1
		if done%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("loader: parse cancelled: %w", err)
			}
		}
		track.step(done)

		if line == "" {
			stats.SpacerLines++
			continue
		}

		item, ok := treetext.ParseLine(line)
		if !ok {
			stats.SpacerLines++
			continue
		}

		item.Depth++
		items = append(items, item)
	}

	track.finish()
	return items, nil
}

// buildForest runs the building phase with the selected strategy.
func buildForest(ctx context.Context, items []treetext.Item, strategy Strategy, progress ProgressFunc) (*treeast.Forest, error) {
	track := newTracker(progress, PhaseBuilding, len(items))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loader: build cancelled: %w", err)
	}

	if strategy == StrategyRecursive {
		consumed := 0
		cursor := treeast.NewCursorFunc(func() (treetext.Item, bool) {
			if consumed >= len(items) {
				return treetext.Item{}, false
			}
			item := items[consumed]
			consumed++
			track.step(consumed)
			return item, true
		})

		forest, err := treeast.BuildForest(cursor)
		if err != nil {
			return nil, err
		}
		track.finish()
		return forest, nil
	}

	builder := treeast.NewBuilder()
	for done, item := range items {
		builder.Add(item)
		track.step(done + 1)
	}
	track.finish()
	return builder.Forest(), nil
}
