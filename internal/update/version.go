// Package update holds build version information
package update

import "fmt"

// Version information injected by ldflags during build.
var (
	// Version is the current version (e.g., "1.0.0")
	Version = "dev"
	// Commit is the git commit hash
	Commit = "unknown"
	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("zstatus %s (commit %s, built %s)", Version, Commit, BuildDate)
}
