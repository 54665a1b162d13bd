// Package version holds build metadata injected at link time, e.g.
//
//	go build -ldflags "-X 'helperkit/internal/version.Version=v1.0.0'"
package version

var (
	Version   = "dev"     // Application version
	GitCommit = "unknown" // Git commit hash
	BuildTime = "unknown" // Build timestamp (RFC3339)
)
