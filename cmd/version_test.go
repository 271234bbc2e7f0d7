package cmd

import (
	"runtime/debug"
	"testing"
)

func setBuild(t *testing.T, version, commit, date string, info *debug.BuildInfo) {
	t.Helper()
	oldV, oldC, oldD, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = oldV, oldC, oldD, oldRead
	})
	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestResolve_FromBuildInfo(t *testing.T) {
	setBuild(t, "dev", "none", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	Resolve()

	if Version != "v1.2.0" || Commit != "abcdef0123456789" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("Resolve() = %s %s %s", Version, Commit, Date)
	}
	if got, want := String(), "plinks v1.2.0 (abcdef0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResolve_KeepsLinkerValues(t *testing.T) {
	setBuild(t, "v2.0.0", "1234567", "today", &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.0.0"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
	})

	Resolve()

	if Version != "v2.0.0" || Commit != "1234567" || Date != "today" {
		t.Errorf("Resolve() overwrote ldflags: %s %s %s", Version, Commit, Date)
	}
}

func TestResolve_Devel(t *testing.T) {
	setBuild(t, "dev", "none", "unknown", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	Resolve()
	if Version != "dev" {
		t.Errorf("Version = %q, want dev", Version)
	}

	setBuild(t, "dev", "none", "unknown", nil)
	Resolve()
	if got := String(); got != "plinks dev (none)" {
		t.Errorf("String() = %q", got)
	}
}
