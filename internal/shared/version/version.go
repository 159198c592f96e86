// Package version holds the build version stamped in with
// -ldflags "-X litreview/internal/shared/version.Version=v1.2.3".
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is the running build. Local builds report "dev".
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	if version == "" {
		return ""
	}
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// IsRelease reports whether v is a valid semantic version, i.e. not a dev
// or otherwise unlabelled build.
func IsRelease(v string) bool {
	return semver.IsValid(Normalize(v))
}

// String returns the normalized running version, or "dev".
func String() string {
	if !IsRelease(Version) {
		return "dev"
	}
	return semver.Canonical(Normalize(Version))
}
