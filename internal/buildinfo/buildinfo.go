// Package buildinfo reports the arcade build identity shown in window titles
// and startup logs.
package buildinfo

import "runtime/debug"

// Set with -ldflags "-X arcade/internal/buildinfo.Version=...".
var (
	Version = ""
	Commit  = ""
)

// Short returns the release version, else a short VCS revision, else "dev".
func Short() string {
	if Version != "" {
		return Version
	}
	if c := revision(); c != "" {
		if len(c) > 7 {
			c = c[:7]
		}
		return c
	}
	return "dev"
}

func revision() string {
	if Commit != "" {
		return Commit
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
