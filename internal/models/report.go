package models

// DependencyReport is the result of comparing detected ecosystems with the
// ecosystems configured in Dependabot
type DependencyReport struct {
	ProjectDependencies   []ProjectDependency `json:"project_dependencies" yaml:"project_dependencies" toml:"project_dependencies"`
	DependabotEcosystems  []string            `json:"dependabot_ecosystems" yaml:"dependabot_ecosystems" toml:"dependabot_ecosystems"`
	MissingFromDependabot []string            `json:"missing_from_dependabot" yaml:"missing_from_dependabot" toml:"missing_from_dependabot"`
	Summary               ReportSummary       `json:"summary" yaml:"summary" toml:"summary"`
}

// ReportSummary holds counts over distinct ecosystem identifiers
type ReportSummary struct {
	TotalEcosystems      int `json:"total_ecosystems" yaml:"total_ecosystems" toml:"total_ecosystems"`
	ConfiguredEcosystems int `json:"configured_ecosystems" yaml:"configured_ecosystems" toml:"configured_ecosystems"`
	MissingEcosystems    int `json:"missing_ecosystems" yaml:"missing_ecosystems" toml:"missing_ecosystems"`
}

// HasGaps returns true if any detected ecosystem is not covered by Dependabot
func (r *DependencyReport) HasGaps() bool {
	return len(r.MissingFromDependabot) > 0
}
