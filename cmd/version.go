// Package cmd holds the plinks build metadata.
package cmd

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/thoreinstein/plinks/cmd.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Resolve fills values the linker left unset from the module build info,
// so `go install github.com/thoreinstein/plinks/cmd/plinks@v1.2.0` still
// reports v1.2.0.
func Resolve() {
	info, ok := readBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if Commit == "none" {
				Commit = s.Value
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = s.Value
			}
		}
	}
}

// String returns a one-line description such as "plinks v1.2.0 (abc1234)".
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("plinks %s (%s)", Version, commit)
}
