// Package misc provides program identity and build metadata helpers.
package misc

import (
	"runtime/debug"
)

const appName = "cssel"

// GetAppName returns the short program name used in logs and file names.
func GetAppName() string {
	return appName
}

// set by the linker for release builds
var version string

// GetVersion returns the program version, preferring the linker-set value.
func GetVersion() string {
	if len(version) != 0 {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) != 0 {
		return bi.Main.Version
	}
	return "unknown"
}

// GetGitHash returns the vcs revision recorded in build info.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
