// Package cache persists discovered browser installations between runs.
//
// The cache is a TOML document holding a schema version and one table per
// installation. Built-in kinds are stored by identifier; custom kinds carry
// their full definition so the cache can be used without the config file.
package cache

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
	"github.com/thoreinstein/plinks/internal/paths"
	"github.com/thoreinstein/plinks/pkg/fileutil"
)

// CurrentVersion is the schema version written by Save.
const CurrentVersion = 1

// Cache is the persisted list of installations.
type Cache struct {
	Version       int
	Installations []browser.Installation
}

// New returns an empty cache at the current schema version.
func New() *Cache {
	return &Cache{Version: CurrentVersion}
}

// Find returns the installation whose display name or executable matches key.
func (c *Cache) Find(key string) (*browser.Installation, bool) {
	for i := range c.Installations {
		inst := &c.Installations[i]
		if inst.DisplayName() == key || inst.ExePath == key {
			return inst, true
		}
	}
	if abs, err := filepath.Abs(key); err == nil && abs != key {
		return c.Find(abs)
	}
	return nil, false
}

// Load reads the cache at path. A missing file yields an empty cache.
// Records with an unknown kind or an invalid custom definition are logged
// and skipped.
func Load(ctx context.Context, path string) (*Cache, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, errors.Wrapf(err, "reading cache %s", path)
	}

	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(err, "decoding cache %s", path)
	}
	if doc.Version > CurrentVersion {
		return nil, errors.Wrapf(errors.ErrUnsupportedVersion,
			"cache %s has version %d, this build supports %d", path, doc.Version, CurrentVersion)
	}

	logger := logging.FromContext(ctx)
	c := &Cache{Version: CurrentVersion}
	for i, rec := range doc.Installations {
		inst, err := rec.installation()
		if err != nil {
			logger.Warn("skipping cached installation", "index", i, "executable", rec.Executable, "error", err)
			continue
		}
		c.Installations = append(c.Installations, inst)
	}
	logger.Debug("loaded cache", "path", path, "installations", len(c.Installations))
	return c, nil
}

// Save writes the cache to path atomically, creating its directory.
func Save(path string, c *Cache) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating cache directory for %s", path)
	}

	doc := document{Version: CurrentVersion}
	for i := range c.Installations {
		doc.Installations = append(doc.Installations, newRecord(&c.Installations[i]))
	}

	if err := fileutil.AtomicWriteTOML(path, doc, 0o644); err != nil {
		return errors.Wrapf(err, "writing cache %s", path)
	}
	return nil
}
