package main

import "github.com/ethanolivertroy/up2date/cmd"

// Populated via -ldflags at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.SetBuildInfo(version, commit, date)
	cmd.Execute()
}
