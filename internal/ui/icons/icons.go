// Package icons picks the glyph shown next to an entry. Folders are
// classified structurally; leaf entries get an icon from the config's
// extension overrides, then from filename-based language detection,
// then the generic file fallback.
package icons

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/dreandnought/TreeWatcher/pkg/config"
	"github.com/dreandnought/TreeWatcher/pkg/treeast"
)

// defaultLanguageIcons maps enry language names to glyphs when the
// config does not override them.
//
//nolint:gochecknoglobals // Read-only lookup table.
var defaultLanguageIcons = map[string]string{
	"Go":         "🐹",
	"Python":     "🐍",
	"JavaScript": "🟨",
	"TypeScript": "🟦",
	"Rust":       "🦀",
	"Shell":      "🐚",
	"Markdown":   "📝",
	"JSON":       "🧾",
	"YAML":       "🧾",
	"HTML":       "🌐",
	"CSS":        "🎨",
}

// Classifier resolves entry glyphs from configuration.
type Classifier struct {
	icons config.IconsConfig
}

// NewClassifier creates a classifier from the icon configuration.
func NewClassifier(icons config.IconsConfig) *Classifier {
	return &Classifier{icons: icons}
}

// For returns the glyph for a node.
func (c *Classifier) For(node *treeast.Node) string {
	if node.IsFolder() {
		return c.icons.Folder
	}
	return c.ForName(node.Name)
}

// ForName returns the glyph for a leaf entry name.
func (c *Classifier) ForName(name string) string {
	if ext := strings.ToLower(filepath.Ext(name)); ext != "" {
		if icon, ok := c.icons.Extensions[ext]; ok {
			return icon
		}
	}

	// Filename-based detection only; there is no content to sniff in a
	// listing.
	if lang := enry.GetLanguage(name, nil); lang != "" {
		if icon, ok := c.icons.Languages[lang]; ok {
			return icon
		}
		if icon, ok := defaultLanguageIcons[lang]; ok {
			return icon
		}
	}

	return c.icons.File
}
