package browser

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/plinks/internal/logging"
)

// VersionProbe reads the internal name of the firefox binary in installDir.
type VersionProbe func(ctx context.Context, installDir string) ([]byte, error)

// Internal names reported by the pre-release channels.
var channels = map[string]Kind{
	"Firefox Nightly":   FirefoxNightly,
	"Firefox Beta":      FirefoxBeta,
	"Firefox Developer": FirefoxDeveloper,
}

// detectTable maps launcher filenames to a kind. A nil kind means the
// Firefox family, whose channel needs the version probe.
var detectTable = map[string]Kind{
	"firefox.exe":            nil,
	"firefox":                nil,
	"FirefoxPortable.exe":    FirefoxPortable,
	"librewolf.exe":          Librewolf,
	"librewolf":              Librewolf,
	"LibreWolf-Portable.exe": LibrewolfPortable,
}

// DetectType classifies the browser installed in dir by scanning its
// entries for a known launcher. It returns (nil, nil) if nothing matches.
func DetectType(ctx context.Context, dir string, probe VersionProbe) (Kind, error) {
	kind, _, err := detect(ctx, dir, probe)
	return kind, err
}

// detect also returns the launcher filename that decided the match.
func detect(ctx context.Context, dir string, probe VersionProbe) (Kind, string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading installation directory %s", dir)
	}

	for _, entry := range entries {
		kind, ok := detectTable[entry.Name()]
		if !ok {
			continue
		}
		if kind == nil {
			kind = classifyChannel(ctx, dir, probe)
		}
		return kind, entry.Name(), nil
	}
	return nil, "", nil
}

// classifyChannel picks the Firefox channel from the probe output.
// Any probe failure falls back to stable Firefox.
func classifyChannel(ctx context.Context, dir string, probe VersionProbe) Kind {
	if probe == nil {
		return Firefox
	}

	logger := logging.FromContext(ctx)
	out, err := probe(ctx, dir)
	if err != nil {
		logger.Warn("version probe failed, assuming stable channel", "dir", dir, "error", err)
		return Firefox
	}
	if !utf8.Valid(out) {
		logger.Warn("version probe output is not valid UTF-8, assuming stable channel", "dir", dir)
		return Firefox
	}

	name := string(bytes.TrimSpace(out))
	if kind, ok := channels[name]; ok {
		return kind
	}
	logger.Log(ctx, logging.LevelTrace, "classified firefox channel", "dir", dir, "internal_name", name)
	return Firefox
}

// DetectCustom returns the first custom kind whose executable exists in dir.
func DetectCustom(dir string, customs []*Custom) *Custom {
	for _, c := range customs {
		if c == nil || c.Executable == "" {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, c.Executable))
		if err == nil && !info.IsDir() {
			return c
		}
	}
	return nil
}
