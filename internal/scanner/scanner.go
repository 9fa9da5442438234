package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ethanolivertroy/up2date/internal/coverage"
	"github.com/ethanolivertroy/up2date/internal/dependabot"
	"github.com/ethanolivertroy/up2date/internal/markers"
	"github.com/ethanolivertroy/up2date/internal/models"
	"go.uber.org/zap"
)

// Scanner orchestrates the coverage check for a single project tree
type Scanner struct {
	config *models.Config
	root   string // config.Root with symlinks resolved
	logger *zap.Logger
}

// New creates a new Scanner with the given configuration
func New(config *models.Config, logger *zap.Logger) (*Scanner, error) {
	if config.Root == "" {
		return nil, fmt.Errorf("no project root configured")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	// WalkDir does not descend into a root that is itself a symlink
	root, err := filepath.EvalSymlinks(config.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	return &Scanner{
		config: config,
		root:   root,
		logger: logger,
	}, nil
}

// Scan performs the full coverage check
func (s *Scanner) Scan(ctx context.Context) (*models.DependencyReport, error) {
	// Step 1: Discover ecosystems present in the tree
	deps, err := s.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to discover dependencies: %w", err)
	}

	// Step 2: Read the ecosystems Dependabot is configured for
	configured := dependabot.FindEcosystems(s.root, s.logger)

	// Step 3: Compare
	report := coverage.Compare(deps, configured)

	s.logger.Debug("scan complete",
		zap.Int("total", report.Summary.TotalEcosystems),
		zap.Int("configured", report.Summary.ConfiguredEcosystems),
		zap.Int("missing", report.Summary.MissingEcosystems))

	return report, nil
}

// Discover walks the project tree and returns one record per distinct
// (ecosystem, directory) pair. The github-actions record, if any, comes first.
func (s *Scanner) Discover(ctx context.Context) ([]models.ProjectDependency, error) {
	deps := []models.ProjectDependency{}

	if s.hasWorkflows() {
		deps = append(deps, models.ProjectDependency{
			Ecosystem: string(models.EcosystemGitHubActions),
			Directory: models.RootDirectory,
		})
	}

	type key struct {
		ecosystem models.Ecosystem
		directory string
	}
	seen := make(map[key]bool)

	root := s.root
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// Best effort: skip anything we can't read
			s.logger.Debug("skipping unreadable entry", zap.String("path", p), zap.Error(err))
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		eco, ok := markers.Lookup(d.Name())
		if !ok {
			return nil
		}

		dir, err := relativeDir(root, p)
		if err != nil {
			s.logger.Debug("skipping entry outside root", zap.String("path", p), zap.Error(err))
			return nil
		}

		k := key{ecosystem: eco, directory: dir}
		if seen[k] {
			return nil
		}
		seen[k] = true

		s.logger.Debug("found marker",
			zap.String("file", d.Name()),
			zap.String("ecosystem", string(eco)),
			zap.String("directory", dir))

		deps = append(deps, models.ProjectDependency{
			Ecosystem: string(eco),
			Directory: dir,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return deps, nil
}

// hasWorkflows checks the direct children of the workflows directory for
// workflow files. Subdirectories are not searched.
func (s *Scanner) hasWorkflows() bool {
	dir := filepath.Join(s.root, filepath.FromSlash(markers.WorkflowsDir))

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("cannot read workflows directory", zap.Error(err))
		return false
	}

	for _, entry := range entries {
		if markers.IsWorkflowFile(entry.Name()) {
			return true
		}
	}
	return false
}

// relativeDir returns the slash-separated directory of path relative to
// root, or "." for files directly in root
func relativeDir(root, path string) (string, error) {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return "", err
	}
	if rel == "." {
		return models.RootDirectory, nil
	}
	return filepath.ToSlash(rel), nil
}
