// Package buildinfo holds corepyc's version stamp, overridable at
// build time with -ldflags, the same mechanism
// lookbusy1344-arm_emulator's main.go documents for its own
// Version/Commit/Date variables.
package buildinfo

import "fmt"

// go build -ldflags "-X corepy/internal/buildinfo.Version=v1.2.3 -X corepy/internal/buildinfo.Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the stamp the way the CLI's version subcommand prints it.
func String() string {
	return fmt.Sprintf("corepyc %s (commit %s, built %s)", Version, Commit, Date)
}
