package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

func testCache() *Cache {
	work := browser.Profile{Name: "Work", Path: "/data/work"}
	home := browser.Profile{Name: "default", Path: "/home/u/.mozilla/firefox/abc.default"}
	floorp := &browser.Custom{
		Executable:  "floorp",
		DisplayName: "Floorp",
		Template: browser.ArgTemplate{
			Args:         []string{"-P", "{profile}", "--new-tab", "{uri}"},
			ProfileIndex: 1,
			URIIndex:     3,
		},
		StaticProfiles: []browser.Profile{work},
	}

	return &Cache{
		Version: CurrentVersion,
		Installations: []browser.Installation{
			{
				NameOverride: "Main Firefox",
				Kind:         browser.FirefoxNightly,
				ExePath:      "/opt/firefox/firefox",
				Aliases:      []string{"/opt/firefox/firefox-bin"},
				Preferred:    map[string]string{home.Path: "/opt/firefox/firefox-bin"},
				Profiles:     []browser.Profile{home},
				LastUsed:     &home,
			},
			{
				Kind:      floorp,
				ExePath:   "/opt/floorp/floorp",
				Preferred: map[string]string{},
				Profiles:  []browser.Profile{work},
			},
		},
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	path := filepath.Join(t.TempDir(), "nested", "cache.toml")

	require.NoError(t, Save(path, testCache()))

	got, err := Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, got.Installations, 2)

	ff := got.Installations[0]
	if ff.Kind != browser.FirefoxNightly {
		t.Errorf("Kind = %v, want FirefoxNightly", ff.Kind)
	}
	if ff.DisplayName() != "Main Firefox" {
		t.Errorf("DisplayName() = %q", ff.DisplayName())
	}
	exe, ok := ff.PreferredFor("/home/u/.mozilla/firefox/abc.default")
	if !ok || exe != "/opt/firefox/firefox-bin" {
		t.Errorf("PreferredFor() = %q, %v", exe, ok)
	}
	if ff.LastUsed == nil || ff.LastUsed.Name != "default" {
		t.Errorf("LastUsed = %v", ff.LastUsed)
	}

	custom, ok := got.Installations[1].Kind.(*browser.Custom)
	if !ok {
		t.Fatalf("Kind = %T, want *browser.Custom", got.Installations[1].Kind)
	}
	args := custom.Args("/data/work", "https://example.com")
	want := "-P /data/work --new-tab https://example.com"
	if strings.Join(args, " ") != want {
		t.Errorf("Args() = %v, want %q", args, want)
	}
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(t.Context(), filepath.Join(t.TempDir(), "cache.toml"))
	require.NoError(t, err)
	if got.Version != CurrentVersion || len(got.Installations) != 0 {
		t.Errorf("Load() = %+v, want empty cache", got)
	}
}

func TestLoadNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o644))

	_, err := Load(t.Context(), path)
	if !errors.Is(err, errors.ErrUnsupportedVersion) {
		t.Errorf("Load() error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestLoadSkipsBadRecords(t *testing.T) {
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	path := filepath.Join(t.TempDir(), "cache.toml")
	content := `version = 1

[[installations]]
kind = "netscape"
executable = "/opt/netscape/netscape"
profiles = [{name = "a", path = "/a"}]

[[installations]]
kind = "custom"
executable = "/opt/x/x"
profiles = [{name = "a", path = "/a"}]

[[installations]]
kind = "librewolf"
executable = "/usr/lib/librewolf/librewolf"
profiles = [{name = "a", path = "/a"}]

[installations.preferred]
"/a" = "/usr/lib/librewolf/librewolf"
"/stale" = "/usr/lib/librewolf/librewolf"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, got.Installations, 1)
	if got.Installations[0].Kind != browser.Librewolf {
		t.Errorf("Kind = %v, want Librewolf", got.Installations[0].Kind)
	}
	if len(got.Installations[0].Preferred) != 1 {
		t.Errorf("Preferred = %v, want stale entry pruned", got.Installations[0].Preferred)
	}
}

func TestLoadPrunesStaleLastUsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.toml")
	content := `version = 1

[[installations]]
kind = "firefox"
executable = "/opt/firefox/firefox"
profiles = [{name = "a", path = "/a"}]
last_used = {name = "gone", path = "/gone"}

[[installations]]
kind = "firefox"
executable = "/opt/firefox-dev/firefox"
profiles = [{name = "b", path = "/b"}]
last_used = {name = "b", path = "/b"}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := Load(t.Context(), path)
	require.NoError(t, err)
	require.Len(t, got.Installations, 2)
	require.Nil(t, got.Installations[0].LastUsed)
	require.NotNil(t, got.Installations[1].LastUsed)
	require.Equal(t, "/b", got.Installations[1].LastUsed.Path)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [\n"), 0o644))

	if _, err := Load(t.Context(), path); err == nil {
		t.Error("Load() on malformed TOML should fail")
	}
}

func TestFind(t *testing.T) {
	c := testCache()
	if inst, ok := c.Find("Main Firefox"); !ok || inst.ExePath != "/opt/firefox/firefox" {
		t.Errorf("Find(name) = %v, %v", inst, ok)
	}
	if inst, ok := c.Find("/opt/floorp/floorp"); !ok || inst.DisplayName() != "Floorp" {
		t.Errorf("Find(exe) = %v, %v", inst, ok)
	}
	if _, ok := c.Find("Chrome"); ok {
		t.Error("Find(unknown) = true")
	}
}
