// Package version holds build-time version info for beacon.
package version

import "fmt"

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Set records the values injected at link time. main calls it once.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

func Version() string   { return version }
func Commit() string    { return commit }
func BuildDate() string { return buildDate }

// String renders the multi-line form printed by `beacon version`.
func String() string {
	return fmt.Sprintf("beacon %s\nCommit: %s\nBuilt: %s", version, commit, buildDate)
}
