// Package markers maps well-known manifest filenames to Dependabot ecosystems.
package markers

import (
	"strings"

	"github.com/ethanolivertroy/up2date/internal/models"
)

// WorkflowsDir is the directory, relative to the project root, holding GitHub Actions workflows
const WorkflowsDir = ".github/workflows"

// workflowSuffixes are the extensions GitHub accepts for workflow files
var workflowSuffixes = []string{".yml", ".yaml"}

// byFilename is matched against the exact, case-sensitive base name of each file
var byFilename = map[string]models.Ecosystem{
	"Cargo.toml": models.EcosystemCargo,

	"package.json": models.EcosystemNpm,

	"requirements.txt": models.EcosystemPip,
	"pyproject.toml":   models.EcosystemPip,
	"setup.py":         models.EcosystemPip,
	"Pipfile":          models.EcosystemPip,

	"go.mod": models.EcosystemGoMod,

	".gitmodules": models.EcosystemGitSubmodule,

	"Dockerfile":    models.EcosystemDocker,
	"Containerfile": models.EcosystemDocker,

	"action.yaml": models.EcosystemGitHubAction,
	"action.yml":  models.EcosystemGitHubAction,
}

// Lookup returns the ecosystem signalled by a file's base name
func Lookup(filename string) (models.Ecosystem, bool) {
	eco, ok := byFilename[filename]
	return eco, ok
}

// IsWorkflowFile returns true if the filename looks like a workflow definition
func IsWorkflowFile(filename string) bool {
	for _, suffix := range workflowSuffixes {
		if strings.HasSuffix(filename, suffix) {
			return true
		}
	}
	return false
}
