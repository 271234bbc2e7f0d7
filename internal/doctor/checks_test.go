package doctor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/cache"
	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

func testContext(t *testing.T) context.Context {
	return logging.NewContext(t.Context(), logging.ForTest(t))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestConfigCheck(t *testing.T) {
	bad := config.Default()
	bad.Prompt = "menu"

	tests := []struct {
		name    string
		cfg     *config.Config
		file    string
		loadErr error
		want    Severity
	}{
		{"load error", nil, "/etc/plinks/config.yaml", errors.New("yaml: line 3"), SeverityError},
		{"invalid", bad, "/etc/plinks/config.yaml", nil, SeverityError},
		{"defaults only", nil, "", nil, SeverityInfo},
		{"valid file", config.Default(), "/etc/plinks/config.yaml", nil, SeverityPass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConfigCheck(tt.cfg, tt.file, tt.loadErr).Run(t.Context())
			require.Equal(t, tt.want, got.Status, got.Message)
			require.Equal(t, "config", got.Category)
		})
	}
}

func TestConfigCheck_ListsProblems(t *testing.T) {
	cfg := config.Default()
	cfg.Version = 0
	cfg.Prompt = "menu"

	got := NewConfigCheck(cfg, "config.yaml", nil).Run(t.Context())
	require.Equal(t, SeverityError, got.Status)
	require.Len(t, got.Details["problems"], 2)
}

func TestRegistryCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good", "profiles.ini")
	writeFile(t, good, "[Profile0]\nName=default\nIsRelative=1\nPath=abc.default\n[General]\n")
	empty := filepath.Join(dir, "empty", "profiles.ini")
	writeFile(t, empty, "[General]\nStartWithLastProfile=1\n[Install4F96D1932A9F858E]\n")

	tests := []struct {
		name     string
		registry string
		want     Severity
	}{
		{"profiles", good, SeverityPass},
		{"no profiles", empty, SeverityWarning},
		{"missing", filepath.Join(dir, "none", "profiles.ini"), SeverityInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := &browser.Resolver{RegistryFile: func(string) string { return tt.registry }}
			check := NewRegistryCheck(resolver, "firefox")
			require.Equal(t, "registry-firefox", check.Name())

			got := check.Run(testContext(t))
			require.Equal(t, tt.want, got.Status, got.Message)
			require.Equal(t, tt.registry, got.Details["path"])
		})
	}
}

func TestRegistryCheck_ReportsProfileNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.ini")
	writeFile(t, path, "[Profile0]\nName=work\nIsRelative=1\nPath=w\n\n[Profile1]\nName=home\nIsRelative=1\nPath=h\n[General]\n")
	resolver := &browser.Resolver{RegistryFile: func(string) string { return path }}

	got := NewRegistryCheck(resolver, "librewolf").Run(testContext(t))
	require.Equal(t, SeverityPass, got.Status)
	require.Equal(t, []string{"work", "home"}, got.Details["profiles"])
}

func TestCacheCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		got := NewCacheCheck(filepath.Join(dir, "none.toml")).Run(testContext(t))
		require.Equal(t, SeverityWarning, got.Status)
		require.Equal(t, "run: plinks scan", got.FixHint)
	})

	t.Run("newer version", func(t *testing.T) {
		path := filepath.Join(dir, "future.toml")
		writeFile(t, path, "version = 99\n")
		got := NewCacheCheck(path).Run(testContext(t))
		require.Equal(t, SeverityError, got.Status)
		require.Contains(t, got.FixHint, "upgrade plinks")
	})

	t.Run("populated", func(t *testing.T) {
		path := filepath.Join(dir, "cache.toml")
		c := cache.New()
		c.Installations = []browser.Installation{{
			Kind:     browser.Firefox,
			ExePath:  "/opt/firefox/firefox",
			Profiles: []browser.Profile{{Name: "default", Path: "/p/default"}},
		}}
		require.NoError(t, cache.Save(path, c))

		got := NewCacheCheck(path).Run(testContext(t))
		require.Equal(t, SeverityPass, got.Status)
		require.Equal(t, 1, got.Details["installations"])
	})
}

func TestInstallationCheck(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "firefox", "firefox")
	writeFile(t, exe, "")
	profile := filepath.Join(dir, "profiles", "default")
	require.NoError(t, os.MkdirAll(profile, 0o755))

	save := func(t *testing.T, inst browser.Installation) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "cache.toml")
		c := cache.New()
		c.Installations = []browser.Installation{inst}
		require.NoError(t, cache.Save(path, c))
		return path
	}

	t.Run("intact", func(t *testing.T) {
		path := save(t, browser.Installation{
			Kind:     browser.Firefox,
			ExePath:  exe,
			Profiles: []browser.Profile{{Name: "default", Path: profile}},
		})
		got := NewInstallationCheck(path).Run(testContext(t))
		require.Equal(t, SeverityPass, got.Status, got.Message)
	})

	t.Run("missing profile and alias", func(t *testing.T) {
		path := save(t, browser.Installation{
			Kind:    browser.Firefox,
			ExePath: exe,
			Aliases: []string{filepath.Join(dir, "firefox", "gone")},
			Profiles: []browser.Profile{
				{Name: "default", Path: profile},
				{Name: "old", Path: filepath.Join(dir, "profiles", "old")},
			},
		})
		got := NewInstallationCheck(path).Run(testContext(t))
		require.Equal(t, SeverityWarning, got.Status)
		issues, ok := got.Details["issues"].(map[string][]string)
		require.True(t, ok)
		require.Len(t, issues["Firefox"], 2)
	})

	t.Run("missing executable", func(t *testing.T) {
		path := save(t, browser.Installation{
			Kind:     browser.Firefox,
			ExePath:  filepath.Join(dir, "removed", "firefox"),
			Profiles: []browser.Profile{{Name: "default", Path: profile}},
		})
		got := NewInstallationCheck(path).Run(testContext(t))
		require.Equal(t, SeverityError, got.Status)
	})

	t.Run("cache unreadable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cache.toml")
		writeFile(t, path, "version = 99\n")
		got := NewInstallationCheck(path).Run(testContext(t))
		require.Equal(t, SeverityInfo, got.Status)
	})
}

func TestInspectInstallation_StalePreference(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "firefox")
	writeFile(t, exe, "")

	inst := &browser.Installation{
		Kind:      browser.Firefox,
		ExePath:   exe,
		Profiles:  []browser.Profile{{Name: "default", Path: dir}},
		Preferred: map[string]string{dir: filepath.Join(dir, "other")},
	}
	status, issues := inspectInstallation(inst)
	require.Equal(t, SeverityWarning, status)
	require.Len(t, issues, 1)
}
