package reporter

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/ethanolivertroy/up2date/internal/models"
)

// TOMLReporter outputs the report as TOML
type TOMLReporter struct{}

// Report generates TOML output for the given report.
// Nil slices are dropped by the encoder, so reports must carry empty slices.
func (r *TOMLReporter) Report(report *models.DependencyReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
