// Package version holds the build version, overridable via -ldflags.
package version

// Version is set at build time with -ldflags "-X seqstats/internal/version.Version=...".
var Version = "dev"
