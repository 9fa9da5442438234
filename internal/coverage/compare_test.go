package coverage

import (
	"testing"

	"github.com/ethanolivertroy/up2date/internal/models"
	"github.com/stretchr/testify/assert"
)

func dep(eco, dir string) models.ProjectDependency {
	return models.ProjectDependency{Ecosystem: eco, Directory: dir}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name        string
		deps        []models.ProjectDependency
		configured  []string
		wantMissing []string
		wantSummary models.ReportSummary
	}{
		{
			name:        "empty",
			wantMissing: []string{},
			wantSummary: models.ReportSummary{},
		},
		{
			name:        "fully covered",
			deps:        []models.ProjectDependency{dep("github-actions", "."), dep("cargo", "."), dep("gitsubmodule", ".")},
			configured:  []string{"cargo", "gitsubmodule", "github-actions"},
			wantMissing: []string{},
			wantSummary: models.ReportSummary{TotalEcosystems: 3, ConfiguredEcosystems: 3, MissingEcosystems: 0},
		},
		{
			name:        "nothing configured",
			deps:        []models.ProjectDependency{dep("npm", "."), dep("cargo", ".")},
			wantMissing: []string{"cargo", "npm"},
			wantSummary: models.ReportSummary{TotalEcosystems: 2, ConfiguredEcosystems: 0, MissingEcosystems: 2},
		},
		{
			name:        "counts distinct ecosystems not directories",
			deps:        []models.ProjectDependency{dep("npm", "frontend"), dep("npm", "docs"), dep("gomod", "backend")},
			configured:  []string{"npm"},
			wantMissing: []string{"gomod"},
			wantSummary: models.ReportSummary{TotalEcosystems: 2, ConfiguredEcosystems: 1, MissingEcosystems: 1},
		},
		{
			name:        "configured but absent ecosystems are ignored",
			deps:        []models.ProjectDependency{dep("docker", ".")},
			configured:  []string{"docker", "pip", "pip"},
			wantMissing: []string{},
			wantSummary: models.ReportSummary{TotalEcosystems: 1, ConfiguredEcosystems: 1, MissingEcosystems: 0},
		},
		{
			name:        "github-action and github-actions are distinct",
			deps:        []models.ProjectDependency{dep("github-action", "action"), dep("github-actions", ".")},
			configured:  []string{"github-actions"},
			wantMissing: []string{"github-action"},
			wantSummary: models.ReportSummary{TotalEcosystems: 2, ConfiguredEcosystems: 1, MissingEcosystems: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Compare(tt.deps, tt.configured)

			assert.ElementsMatch(t, tt.wantMissing, report.MissingFromDependabot)
			assert.NotNil(t, report.MissingFromDependabot)
			assert.NotNil(t, report.ProjectDependencies)
			assert.NotNil(t, report.DependabotEcosystems)
			assert.Equal(t, tt.wantSummary, report.Summary)
			assert.Equal(t, report.Summary.TotalEcosystems,
				report.Summary.ConfiguredEcosystems+report.Summary.MissingEcosystems)
			assert.Equal(t, len(tt.wantMissing) > 0, report.HasGaps())
		})
	}
}

func TestCompare_PassesConfiguredListThrough(t *testing.T) {
	configured := []string{"pip", "cargo", "pip"}
	report := Compare([]models.ProjectDependency{dep("cargo", ".")}, configured)

	assert.Equal(t, []string{"pip", "cargo", "pip"}, report.DependabotEcosystems)
	assert.Equal(t, []models.ProjectDependency{dep("cargo", ".")}, report.ProjectDependencies)
}
