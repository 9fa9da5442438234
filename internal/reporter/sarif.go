package reporter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethanolivertroy/up2date/internal/models"
)

const (
	sarifRuleID         = "missing-dependabot-ecosystem"
	sarifArtifactURI    = ".github/dependabot.yml"
	sarifFingerprintKey = "up2dateEcosystem/v1"
)

// SARIFReporter outputs missing ecosystems in SARIF format for GitHub Code Scanning
type SARIFReporter struct{}

// SARIF structures
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	FullDescription  sarifText       `json:"fullDescription"`
	Help             sarifText       `json:"help"`
	HelpURI          string          `json:"helpUri"`
	DefaultConfig    sarifRuleConfig `json:"defaultConfiguration"`
	Properties       sarifProperties `json:"properties"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifProperties struct {
	Tags []string `json:"tags"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifText         `json:"message"`
	Locations           []sarifLocation   `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

// Report generates SARIF output for the given report
func (r *SARIFReporter) Report(report *models.DependencyReport) ([]byte, error) {
	out := sarifReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           "up2date",
					InformationURI: "https://github.com/ethanolivertroy/up2date",
					Rules:          []sarifRule{r.buildRule()},
				},
			},
			Results: r.buildResults(report),
		}},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (r *SARIFReporter) buildRule() sarifRule {
	return sarifRule{
		ID:   sarifRuleID,
		Name: "MissingDependabotEcosystem",
		ShortDescription: sarifText{
			Text: "Ecosystem is not configured for Dependabot updates",
		},
		FullDescription: sarifText{
			Text: "A package ecosystem was detected in the repository but no Dependabot update entry declares it.",
		},
		Help: sarifText{
			Text: "Add an entry with the matching package-ecosystem to .github/dependabot.yml.",
		},
		HelpURI:       "https://docs.github.com/en/code-security/dependabot/working-with-dependabot/dependabot-options-reference#package-ecosystem-",
		DefaultConfig: sarifRuleConfig{Level: "warning"},
		Properties: sarifProperties{
			Tags: []string{"dependencies", "dependabot", "supply-chain"},
		},
	}
}

func (r *SARIFReporter) buildResults(report *models.DependencyReport) []sarifResult {
	// Directories each ecosystem was found in, in report order
	dirs := make(map[string][]string)
	for _, dep := range report.ProjectDependencies {
		dirs[dep.Ecosystem] = append(dirs[dep.Ecosystem], dep.Directory)
	}

	results := make([]sarifResult, 0, len(report.MissingFromDependabot))
	for _, eco := range report.MissingFromDependabot {
		msg := fmt.Sprintf("Ecosystem %q is not configured in Dependabot", eco)
		if found := dirs[eco]; len(found) > 0 {
			msg += fmt.Sprintf(" (found in: %s)", strings.Join(found, ", "))
		}

		results = append(results, sarifResult{
			RuleID:    sarifRuleID,
			RuleIndex: 0,
			Level:     "warning",
			Message:   sarifText{Text: msg},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifact{URI: sarifArtifactURI},
				},
			}},
			PartialFingerprints: map[string]string{
				sarifFingerprintKey: eco,
			},
		})
	}

	return results
}
