package reporter

import (
	"bytes"

	"github.com/ethanolivertroy/up2date/internal/models"
	"gopkg.in/yaml.v3"
)

// YAMLReporter outputs the report as YAML
type YAMLReporter struct{}

// Report generates YAML output for the given report
func (r *YAMLReporter) Report(report *models.DependencyReport) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
