// Package version holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/LBuyana/talentflow-app/internal/version.Version=v1.2.0"
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build metadata as a single line.
func String() string {
	return Version + " (commit " + Commit + ", built " + Date + ")"
}
