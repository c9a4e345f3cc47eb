package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestGetVersion_Release(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	tests := []string{"1.0.0", "v2.1.3", "1.0.0-beta.1"}

	for _, v := range tests {
		t.Run(v, func(t *testing.T) {
			Version = v
			if got := GetVersion(); got != v {
				t.Errorf("GetVersion() = %q, want %q", got, v)
			}
		})
	}
}

func TestModuleVersion(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()
	Version = "dev"

	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{
			name: "no build info",
			ok:   false,
			want: "dev",
		},
		{
			name: "devel build",
			info: &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			ok:   true,
			want: "dev",
		},
		{
			name: "empty module version",
			info: &debug.BuildInfo{Main: debug.Module{}},
			ok:   true,
			want: "dev",
		},
		{
			name: "go install with version",
			info: &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}},
			ok:   true,
			want: "v0.4.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moduleVersion(func() (*debug.BuildInfo, bool) { return tt.info, tt.ok })
			if got != tt.want {
				t.Errorf("moduleVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetFullVersion(t *testing.T) {
	originalVersion := Version
	originalBuildDate := BuildDate
	originalGitCommit := GitCommit
	defer func() {
		Version = originalVersion
		BuildDate = originalBuildDate
		GitCommit = originalGitCommit
	}()

	tests := []struct {
		name      string
		version   string
		buildDate string
		gitCommit string
		want      string
	}{
		{
			name:      "production release",
			version:   "1.0.0",
			buildDate: "2026-01-15T10:30:00Z",
			gitCommit: "abc123def",
			want:      "1.0.0 (build: 2026-01-15T10:30:00Z, commit: abc123def)",
		},
		{
			name:      "pre-release with metadata",
			version:   "1.0.0-rc.1",
			buildDate: "2026-03-10",
			gitCommit: "deadbeef",
			want:      "1.0.0-rc.1 (build: 2026-03-10, commit: deadbeef)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.version
			BuildDate = tt.buildDate
			GitCommit = tt.gitCommit

			if got := GetFullVersion(); got != tt.want {
				t.Errorf("GetFullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetFullVersion_DevBuild(t *testing.T) {
	full := GetFullVersion()

	if !strings.Contains(full, "build:") || !strings.Contains(full, "commit:") {
		t.Errorf("GetFullVersion() = %q, should contain build and commit labels", full)
	}
	if !strings.HasSuffix(full, ")") {
		t.Errorf("GetFullVersion() = %q, should end with closing parenthesis", full)
	}
}
