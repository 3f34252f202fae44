// Package version reports build metadata injected at link time:
//
//	go build -ldflags "-X github.com/rshade/ecoquest/pkg/version.version=v1.2.3"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = ""
	gitCommit = ""
	buildDate = ""
)

const devVersion = "dev"

// GetVersion returns the linked version, the module version from build info,
// or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}

// GetGitCommit returns the linked commit, or the VCS revision from build info.
func GetGitCommit() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// GetBuildDate returns the linked build date, or "unknown".
func GetBuildDate() string {
	if buildDate != "" {
		return buildDate
	}
	return "unknown"
}

// Info is the full build description.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects Info for the running binary.
func Get() Info {
	return Info{
		Version:   GetVersion(),
		GitCommit: GetGitCommit(),
		BuildDate: GetBuildDate(),
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders Info on one line.
func (i Info) String() string {
	return fmt.Sprintf("ecoquest %s (commit %s, built %s, %s %s)",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
