package models

// Ecosystem represents a Dependabot package ecosystem identifier
type Ecosystem string

const (
	EcosystemCargo         Ecosystem = "cargo"
	EcosystemNpm           Ecosystem = "npm"
	EcosystemPip           Ecosystem = "pip"
	EcosystemGoMod         Ecosystem = "gomod"
	EcosystemGitSubmodule  Ecosystem = "gitsubmodule"
	EcosystemDocker        Ecosystem = "docker"
	EcosystemGitHubAction  Ecosystem = "github-action"
	EcosystemGitHubActions Ecosystem = "github-actions"
)

// RootDirectory is the relative directory used for files found directly in the scanned root
const RootDirectory = "."

// ProjectDependency records that an ecosystem was detected in a directory
type ProjectDependency struct {
	Ecosystem string `json:"ecosystem" yaml:"ecosystem" toml:"ecosystem"`
	Directory string `json:"directory" yaml:"directory" toml:"directory"` // Relative to the scanned root
}
