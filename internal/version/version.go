// Package version contains version information.
package version

import "runtime/debug"

// Version information for wordpass, set with -ldflags at release time.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// GetVersion returns the release version. Binaries installed with
// `go install module@version` carry no ldflags, so a dev build falls back
// to the module version recorded by the toolchain.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	return moduleVersion(debug.ReadBuildInfo)
}

func moduleVersion(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return Version
	}
	return info.Main.Version
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return GetVersion() + " (build: " + BuildDate + ", commit: " + GitCommit + ")"
}
