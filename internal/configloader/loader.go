package configloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dreandnought/TreeWatcher/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, user and project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string
}

// Load resolves the final configuration. Precedence, lowest to highest:
// built-in defaults, user config, project config (or the explicit
// --config file, which replaces both), environment variables. CLI flags
// are applied on top by the command layer.
//
// Each layer is decoded onto the accumulated configuration, so keys a
// file omits keep their previous values.
func Load(opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = cwd
	}

	cfg := config.Default()
	result := &LoadResult{Config: cfg}

	if opts.ExplicitPath != "" {
		result.Paths = &ConfigPaths{Explicit: opts.ExplicitPath}
		if err := applyFile(cfg, opts.ExplicitPath, true); err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else {
		result.Paths = DiscoverPaths(workDir)
		for _, path := range []string{result.Paths.User, result.Paths.Project} {
			if path == "" {
				continue
			}
			if err := applyFile(cfg, path, false); err != nil {
				return nil, err
			}
			result.LoadedFrom = append(result.LoadedFrom, path)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// applyFile decodes one YAML file onto cfg. A missing file is an error
// only when the path was requested explicitly.
func applyFile(cfg *config.Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	return nil
}
