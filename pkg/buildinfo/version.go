// Package buildinfo holds version metadata stamped into contribnet binaries.
//
// The linker fills the variables:
//
//	go build -ldflags "-X github.com/ZacharySOlsen/weighting-ethereum/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/ZacharySOlsen/weighting-ethereum/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/ZacharySOlsen/weighting-ethereum/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/contribnet
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the source revision.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// Resolved returns Version and Commit, falling back to the module build info
// recorded by `go install` when the linker did not stamp them.
func Resolved() (version, commit string) {
	version, commit = Version, Commit
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "none" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				commit = s.Value
			}
		}
	}
	return version, commit
}

// String formats the build information on three lines.
func String() string {
	v, c := Resolved()
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", v, c, Date)
}

// Template is the cobra version template.
func Template() string {
	v, c := Resolved()
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", v, c, Date)
}
