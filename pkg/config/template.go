package config

import "fmt"

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes the commented extension and language overrides.
	Full bool
}

const templateHeader = `# treewatcher configuration.
# Icons are looked up per entry: extension override, then detected
# language, then the folder/file fallback.`

const templateOverrides = `
  # extensions:
  #   ".go": "🐹"
  #   ".md": "📝"
  # languages:
  #   Python: "🐍"
  #   JavaScript: "🟨"`

// GenerateTemplate produces a starter configuration file.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	body, err := Default().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate template: %w", err)
	}

	content := templateHeader + "\n\n" + string(body)
	if opts.Full {
		content += templateOverrides + "\n"
	}

	return []byte(content), nil
}
