// Package version holds build-time version metadata for officedesk.
package version

import "fmt"

// Build information, set via ldflags at build time.
var (
	// Version is the semantic version of this build.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String returns a human-readable version string.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
