// Package version provides version information for alfred-hue.
package version

// Version is overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash, overridden at build time using ldflags.
var Commit = "unknown"

// String returns the full version string including the commit hash if available.
func String() string {
	if Commit != "unknown" {
		return Version + "+" + Commit
	}
	return Version
}

// UserAgent is sent with every bridge request.
func UserAgent() string {
	return "alfred-hue/" + String()
}
