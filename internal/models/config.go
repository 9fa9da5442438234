package models

// Output formats understood by the reporter package
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatTOML     = "toml"
	FormatSARIF    = "sarif"
)

// Config holds configuration for a coverage check
type Config struct {
	// Root of the project tree to scan
	Root string

	// Output settings
	OutputFormat string // "markdown", "json", "yaml", "toml", "sarif"
	OutputFile   string // Optional output file path

	// Verbose enables debug logging on stderr
	Verbose bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Root:         ".",
		OutputFormat: FormatMarkdown,
	}
}
