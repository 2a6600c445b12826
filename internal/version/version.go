package version

import "fmt"

// Version is set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/docconf/internal/version.Version=v0.3.0".
var Version = "unknown"

// Build metadata, also injected via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by `docconf --version`.
func String() string {
	return fmt.Sprintf("docconf %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
