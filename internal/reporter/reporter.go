package reporter

import (
	"fmt"

	"github.com/ethanolivertroy/up2date/internal/models"
)

// Reporter is the interface for output formatters
type Reporter interface {
	// Report generates output for the given coverage report
	Report(report *models.DependencyReport) ([]byte, error)
}

// Get returns a reporter for the specified format. An empty format selects Markdown.
func Get(format string) (Reporter, error) {
	switch format {
	case "", models.FormatMarkdown:
		return &MarkdownReporter{}, nil
	case models.FormatJSON:
		return &JSONReporter{}, nil
	case models.FormatYAML:
		return &YAMLReporter{}, nil
	case models.FormatTOML:
		return &TOMLReporter{}, nil
	case models.FormatSARIF:
		return &SARIFReporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}
