// Package version carries build metadata, overridden at link time via
// -ldflags "-X .../internal/version.Version=...".
package version

var (
	// Version is the current frameplot version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)
