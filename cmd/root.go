package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/up2date/internal/logging"
	"github.com/ethanolivertroy/up2date/internal/models"
	"github.com/ethanolivertroy/up2date/internal/reporter"
	"github.com/ethanolivertroy/up2date/internal/scanner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes
const (
	ExitOK          = 0
	ExitCoverageGap = 1
	ExitError       = 2
)

// ErrCoverageGap is returned when an ecosystem present in the project is not
// configured in Dependabot. The report has already been written.
var ErrCoverageGap = errors.New("ecosystems missing from dependabot")

type rootOptions struct {
	json    bool
	yaml    bool
	toml    bool
	sarif   bool
	output  string
	verbose bool
}

// format returns the selected output format; the flags are mutually exclusive
func (o *rootOptions) format() string {
	switch {
	case o.json:
		return models.FormatJSON
	case o.yaml:
		return models.FormatYAML
	case o.toml:
		return models.FormatTOML
	case o.sarif:
		return models.FormatSARIF
	default:
		return models.FormatMarkdown
	}
}

// NewRootCmd builds the up2date command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "up2date [path]",
		Short: "Check that every dependency ecosystem is covered by Dependabot",
		Long: `up2date scans the current repository for dependency manifests and checks
that every ecosystem it finds is configured for automatic updates in
.github/dependabot.yml (or .github/dependabot.yaml).

Recognised ecosystems:
  - cargo:          Cargo.toml
  - npm:            package.json
  - pip:            requirements.txt, pyproject.toml, setup.py, Pipfile
  - gomod:          go.mod
  - gitsubmodule:   .gitmodules
  - docker:         Dockerfile, Containerfile
  - github-action:  action.yml, action.yaml
  - github-actions: workflow files in .github/workflows

The command exits with status 1 when any ecosystem is missing from the
Dependabot configuration.

Examples:
  # Check the current directory, Markdown report
  up2date

  # Machine-readable output
  up2date --json
  up2date --yaml
  up2date --toml

  # SARIF for GitHub Code Scanning
  up2date --sarif --output up2date.sarif`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.json, "json", false, "Output in JSON format")
	flags.BoolVar(&opts.yaml, "yaml", false, "Output in YAML format")
	flags.BoolVar(&opts.toml, "toml", false, "Output in TOML format")
	flags.BoolVar(&opts.sarif, "sarif", false, "Output in SARIF format")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.MarkFlagsMutuallyExclusive("json", "yaml", "toml", "sarif")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits with the matching status code.
func Execute() {
	err := NewRootCmd().Execute()
	code := ExitCode(err)
	if code == ExitError {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrCoverageGap):
		return ExitCoverageGap
	default:
		return ExitError
	}
}

func runCheck(cmd *cobra.Command, args []string, opts *rootOptions) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	config := models.DefaultConfig()
	config.Root = root
	config.OutputFormat = opts.format()
	config.OutputFile = opts.output
	config.Verbose = opts.verbose

	logger := logging.New(cmd.ErrOrStderr(), config.Verbose)
	defer logger.Sync() //nolint:errcheck

	// Resolve the reporter before doing any work
	rep, err := reporter.Get(config.OutputFormat)
	if err != nil {
		return err
	}

	s, err := scanner.New(config, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize scanner: %w", err)
	}

	logger.Debug("scanning project", zap.String("root", config.Root), zap.String("format", config.OutputFormat))

	report, err := s.Scan(context.Background())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	output, err := rep.Report(report)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if config.OutputFile != "" {
		if err := os.WriteFile(config.OutputFile, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", config.OutputFile)
	} else if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if report.HasGaps() {
		if config.OutputFile != "" {
			color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(),
				"%d ecosystem(s) missing from dependabot\n", report.Summary.MissingEcosystems)
		}
		return ErrCoverageGap
	}

	return nil
}

// resolveRoot returns the absolute directory to scan: the optional path
// argument, or the current working directory
func resolveRoot(args []string) (string, error) {
	if len(args) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return wd, nil
	}

	root, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", args[0], err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to stat path %s: %w", args[0], err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", args[0])
	}
	return root, nil
}
