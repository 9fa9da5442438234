package reporter

import (
	"fmt"
	"strings"

	"github.com/ethanolivertroy/up2date/internal/models"
)

// MarkdownReporter outputs a human-readable Markdown report
type MarkdownReporter struct{}

// Report generates Markdown output for the given report
func (r *MarkdownReporter) Report(report *models.DependencyReport) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# Dependabot Coverage Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total ecosystems found**: %d\n", report.Summary.TotalEcosystems)
	fmt.Fprintf(&sb, "- **Configured in dependabot**: %d\n", report.Summary.ConfiguredEcosystems)
	fmt.Fprintf(&sb, "- **Missing from dependabot**: %d\n\n", report.Summary.MissingEcosystems)

	sb.WriteString("## Project Dependencies\n\n")
	for _, dep := range report.ProjectDependencies {
		fmt.Fprintf(&sb, "- **%s** in `%s`\n", dep.Ecosystem, dep.Directory)
	}
	sb.WriteString("\n")

	if len(report.MissingFromDependabot) > 0 {
		sb.WriteString("## Missing from Dependabot\n\n")
		for _, eco := range report.MissingFromDependabot {
			fmt.Fprintf(&sb, "- %s\n", eco)
		}
		sb.WriteString("\n")
	}

	if len(report.DependabotEcosystems) > 0 {
		sb.WriteString("## Configured in Dependabot\n\n")
		for _, eco := range report.DependabotEcosystems {
			fmt.Fprintf(&sb, "- %s\n", eco)
		}
	}

	return []byte(sb.String()), nil
}
