package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreandnought/TreeWatcher/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	assert.Equal(t, "📂", cfg.Icons.Folder)
	assert.Equal(t, "📄", cfg.Icons.File)
	assert.Equal(t, -1, cfg.Depth)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Equal(t, "stack", cfg.Strategy)
	assert.False(t, cfg.NoIcons)
}

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("xml").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	original := config.Default()
	original.Depth = 3
	original.Format = config.FormatJSON
	original.Icons.Extensions = map[string]string{".go": "🐹"}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, original.Depth, parsed.Depth)
	assert.Equal(t, original.Format, parsed.Format)
	assert.Equal(t, original.Icons.Folder, parsed.Icons.Folder)
	assert.Equal(t, original.Icons.File, parsed.Icons.File)
	assert.Equal(t, "🐹", parsed.Icons.Extensions[".go"])
}

func TestFromYAML_RejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("dephts: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestFromYAML_EmptyInput(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestFromYAML_PartialConfig(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("depth: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Depth)
	assert.Empty(t, cfg.Strategy)
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	data, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "# treewatcher configuration")
	assert.NotContains(t, string(data), "# extensions:")

	// The uncommented body must itself be loadable.
	full, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)
	assert.Contains(t, string(full), "# extensions:")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Icons.Folder, parsed.Icons.Folder)
}
