package reporter

import (
	"encoding/json"

	"github.com/ethanolivertroy/up2date/internal/models"
)

// JSONReporter outputs the report as indented JSON
type JSONReporter struct{}

// Report generates JSON output for the given report
func (r *JSONReporter) Report(report *models.DependencyReport) ([]byte, error) {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
