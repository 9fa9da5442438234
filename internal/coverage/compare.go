// Package coverage compares detected ecosystems against Dependabot configuration.
package coverage

import (
	"sort"

	"github.com/ethanolivertroy/up2date/internal/models"
)

// Compare builds a report of which detected ecosystems are not covered by
// the configured ones. Counts are over distinct ecosystem identifiers and
// the configured count is derived as total minus missing.
func Compare(deps []models.ProjectDependency, configured []string) *models.DependencyReport {
	if deps == nil {
		deps = []models.ProjectDependency{}
	}
	if configured == nil {
		configured = []string{}
	}

	projectSet := make(map[string]struct{}, len(deps))
	for _, dep := range deps {
		projectSet[dep.Ecosystem] = struct{}{}
	}

	configuredSet := make(map[string]struct{}, len(configured))
	for _, eco := range configured {
		configuredSet[eco] = struct{}{}
	}

	missing := make([]string, 0)
	for eco := range projectSet {
		if _, ok := configuredSet[eco]; !ok {
			missing = append(missing, eco)
		}
	}
	sort.Strings(missing)

	total := len(projectSet)

	return &models.DependencyReport{
		ProjectDependencies:   deps,
		DependabotEcosystems:  configured,
		MissingFromDependabot: missing,
		Summary: models.ReportSummary{
			TotalEcosystems:      total,
			ConfiguredEcosystems: total - len(missing),
			MissingEcosystems:    len(missing),
		},
	}
}
