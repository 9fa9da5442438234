// Package dependabot reads the repository's Dependabot configuration.
package dependabot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// CandidatePaths are tried in order; the first one that parses wins
var CandidatePaths = []string{
	".github/dependabot.yml",
	".github/dependabot.yaml",
}

// Config represents a Dependabot configuration file (version 2)
type Config struct {
	Version uint8          `yaml:"version"`
	Updates []UpdateConfig `yaml:"updates"`
}

// UpdateConfig represents a single package ecosystem update entry
type UpdateConfig struct {
	PackageEcosystem string         `yaml:"package-ecosystem"`
	Directory        string         `yaml:"directory"`
	Schedule         ScheduleConfig `yaml:"schedule"`
}

// ScheduleConfig controls how often Dependabot checks for updates
type ScheduleConfig struct {
	Interval string `yaml:"interval"`
}

// rawConfig mirrors Config with pointers so missing required keys can be told
// apart from zero values
type rawConfig struct {
	Version *strictUint8 `yaml:"version"`
	Updates *[]rawUpdate `yaml:"updates"`
}

type rawUpdate struct {
	PackageEcosystem *strictString `yaml:"package-ecosystem"`
	Directory        *strictString `yaml:"directory"`
	Schedule         *rawSchedule  `yaml:"schedule"`
}

type rawSchedule struct {
	Interval *strictString `yaml:"interval"`
}

// strictString only accepts string scalars; yaml.v3 would otherwise turn
// `123` or `true` into a string
type strictString string

func (s *strictString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: expected string, got %s", value.Line, value.ShortTag())
	}
	*s = strictString(value.Value)
	return nil
}

// strictUint8 only accepts integer scalars; yaml.v3 would otherwise truncate
// floats such as 2.7
type strictUint8 uint8

func (v *strictUint8) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
		return fmt.Errorf("line %d: expected integer, got %s", value.Line, value.ShortTag())
	}
	var n uint8
	if err := value.Decode(&n); err != nil {
		return err
	}
	*v = strictUint8(n)
	return nil
}

// Parse decodes and validates Dependabot configuration content. Every key of
// the expected shape is required and must have the right scalar type.
func Parse(content []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if raw.Version == nil {
		return nil, errors.New("missing field: version")
	}
	if raw.Updates == nil {
		return nil, errors.New("missing field: updates")
	}

	cfg := &Config{
		Version: uint8(*raw.Version),
		Updates: make([]UpdateConfig, 0, len(*raw.Updates)),
	}

	for i, u := range *raw.Updates {
		if u.PackageEcosystem == nil {
			return nil, fmt.Errorf("updates[%d]: missing field: package-ecosystem", i)
		}
		if u.Directory == nil {
			return nil, fmt.Errorf("updates[%d]: missing field: directory", i)
		}
		if u.Schedule == nil || u.Schedule.Interval == nil {
			return nil, fmt.Errorf("updates[%d]: missing field: schedule.interval", i)
		}

		cfg.Updates = append(cfg.Updates, UpdateConfig{
			PackageEcosystem: string(*u.PackageEcosystem),
			Directory:        string(*u.Directory),
			Schedule:         ScheduleConfig{Interval: string(*u.Schedule.Interval)},
		})
	}

	return cfg, nil
}

// Load reads and parses a Dependabot configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Ecosystems returns the package ecosystems declared in the order they appear
func (c *Config) Ecosystems() []string {
	ecosystems := make([]string, 0, len(c.Updates))
	for _, u := range c.Updates {
		ecosystems = append(ecosystems, u.PackageEcosystem)
	}
	return ecosystems
}

// FindEcosystems returns the ecosystems declared by the first candidate
// configuration under root that exists and parses. Unreadable or malformed
// candidates are skipped. The result is empty, never nil, when nothing matches.
func FindEcosystems(root string, logger *zap.Logger) []string {
	for _, candidate := range CandidatePaths {
		path := filepath.Join(root, filepath.FromSlash(candidate))

		if _, err := os.Stat(path); err != nil {
			continue
		}

		cfg, err := Load(path)
		if err != nil {
			logger.Debug("skipping dependabot config", zap.String("path", candidate), zap.Error(err))
			continue
		}

		logger.Debug("loaded dependabot config",
			zap.String("path", candidate),
			zap.Int("updates", len(cfg.Updates)))
		return cfg.Ecosystems()
	}

	logger.Debug("no dependabot config found")
	return []string{}
}
