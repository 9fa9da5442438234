package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// These variables are populated by the build via -ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// SetBuildInfo records build metadata for the version command
func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// displayVersion normalises release versions ("1.2" -> "v1.2.0") and leaves
// anything that isn't semver untouched
func displayVersion(v string) string {
	if !semver.IsValid(v) && semver.IsValid("v"+v) {
		v = "v" + v
	}
	if semver.IsValid(v) {
		// Canonical drops "+build" metadata
		return semver.Canonical(v) + semver.Build(v)
	}
	return v
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "up2date %s\ncommit: %s\nbuilt:  %s\n",
				displayVersion(buildVersion), buildCommit, buildDate)
		},
	}
}
