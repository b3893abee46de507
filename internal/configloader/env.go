package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dreandnought/TreeWatcher/pkg/config"
)

// envVarPrefix is the prefix for all treewatcher environment variables.
const envVarPrefix = "TREEWATCHER_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with TREEWATCHER_
// (e.g. TREEWATCHER_DEPTH).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if value := os.Getenv(envVarPrefix + "FORMAT"); value != "" {
		cfg.Format = config.OutputFormat(value)
	}
	if value := os.Getenv(envVarPrefix + "STRATEGY"); value != "" {
		cfg.Strategy = value
	}
	if value := os.Getenv(envVarPrefix + "DEPTH"); value != "" {
		depth, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%sDEPTH: invalid integer %q", envVarPrefix, value)
		}
		cfg.Depth = depth
	}
	if value := os.Getenv(envVarPrefix + "ICON_FOLDER"); value != "" {
		cfg.Icons.Folder = value
	}
	if value := os.Getenv(envVarPrefix + "ICON_FILE"); value != "" {
		cfg.Icons.File = value
	}

	return nil
}
