package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dreandnought/TreeWatcher/internal/configloader"
	"github.com/dreandnought/TreeWatcher/internal/logging"
	"github.com/dreandnought/TreeWatcher/internal/textio"
	"github.com/dreandnought/TreeWatcher/pkg/config"
	"github.com/dreandnought/TreeWatcher/pkg/loader"
	"github.com/dreandnought/TreeWatcher/pkg/treetext"
)

// resolveConfig loads and merges configuration for a command run.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	logger := logging.Default()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errConfig, err)
	}

	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPath, result.LoadedFrom)
	}

	return result.Config, nil
}

// loadListing reads, decodes, and loads one listing file through a
// loader.Service, so parse and build run off the command goroutine.
func loadListing(ctx context.Context, path string, cfg *config.Config) (*loader.Result, error) {
	logger := logging.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read listing: %w", err)
	}

	content, encoding, err := textio.Decode(raw)
	if err != nil {
		if errors.Is(err, textio.ErrEmptyInput) {
			return nil, fmt.Errorf("%s: file is empty: %w", path, err)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("decoded listing",
		logging.FieldPath, path,
		logging.FieldEncoding, encoding,
	)

	lines := treetext.SplitLines(content)

	opts := loader.Options{
		Strategy: loader.Strategy(cfg.Strategy),
	}
	if cfg.Progress {
		opts.Progress = func(p loader.Progress) {
			logger.Info("load progress",
				logging.FieldPhase, p.Phase.String(),
				logging.FieldDone, p.Done,
				logging.FieldTotal, p.Total,
			)
		}
	}

	service := loader.NewService()
	defer service.Close()

	generation := service.Start(ctx, lines, opts)
	logger.Debug("load started",
		logging.FieldPath, path,
		logging.FieldGeneration, generation,
		logging.FieldStrategy, string(opts.Strategy),
	)

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load cancelled: %w", ctx.Err())
	case outcome := <-service.Outcomes():
		if outcome.Err != nil {
			return nil, fmt.Errorf("%s: %w", path, outcome.Err)
		}
		return outcome.Result, nil
	}
}
