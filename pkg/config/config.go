// Package config defines core configuration types for treewatcher.
// These are pure data structures with no dependency on how or where
// configuration files are discovered.
package config

// OutputFormat specifies the output format for the reconstructed tree.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the output format is a known value.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// IconsConfig controls the glyphs shown next to entries.
type IconsConfig struct {
	// Folder is the glyph for entries with children.
	Folder string `yaml:"folder"`

	// File is the fallback glyph for leaf entries.
	File string `yaml:"file"`

	// Extensions maps lowercase file extensions (with leading dot) to
	// glyphs, e.g. ".go": "🐹". Takes precedence over Languages.
	Extensions map[string]string `yaml:"extensions"`

	// Languages maps detected language names to glyphs, e.g.
	// "Python": "🐍". Consulted when no extension override matches.
	Languages map[string]string `yaml:"languages"`
}

// Config is the root configuration structure for treewatcher.
type Config struct {
	// Icons configures entry glyphs.
	Icons IconsConfig `yaml:"icons"`

	// Depth is the default number of levels expanded when rendering.
	// -1 expands everything, 0 shows only the roots.
	Depth int `yaml:"depth"`

	// Format is the default output format ("text" or "json").
	Format OutputFormat `yaml:"format"`

	// Strategy is the default build strategy ("stack" or "recursive").
	Strategy string `yaml:"strategy"`

	// CLI-level options (not persisted to config files).

	// NoIcons suppresses entry glyphs in text output.
	NoIcons bool `yaml:"-"`

	// Progress enables logging of build progress reports.
	Progress bool `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Icons: IconsConfig{
			Folder: "📂",
			File:   "📄",
		},
		Depth:    -1,
		Format:   FormatText,
		Strategy: "stack",
	}
}
