package commands

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/plinks/cmd"
	"github.com/thoreinstein/plinks/internal/backup"
	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/cache"
	"github.com/thoreinstein/plinks/internal/cli/prompt"
	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/launch"
	"github.com/thoreinstein/plinks/internal/logging"
	"github.com/thoreinstein/plinks/internal/paths"
	"github.com/thoreinstein/plinks/pkg/fileutil"
)

// Seams replaced in tests.
var (
	newPrompter  = func(style string) prompt.Prompter { return prompt.New(style) }
	launcher     = &launch.Launcher{}
	versionProbe = browser.DefaultVersionProbe

	processExecutables browser.ProcessLister = browser.ProcessExecutables
)

// currentConfig returns the loaded config, or defaults.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

func cachePath() (string, error) {
	path, err := currentConfig().CachePath()
	if err != nil {
		return "", errors.NewSystemError(errors.Wrap(err, "locating cache"), "Set cache_file in config.yaml")
	}
	return path, nil
}

// loadCache reads the installation cache.
func loadCache(ctx context.Context) (*cache.Cache, string, error) {
	path, err := cachePath()
	if err != nil {
		return nil, "", err
	}
	c, err := cache.Load(ctx, path)
	if err != nil {
		if errors.Is(err, errors.ErrUnsupportedVersion) {
			return nil, "", errors.NewUserError(err, "Upgrade plinks or remove "+path)
		}
		return nil, "", errors.NewSystemError(err, "Check permissions on "+path)
	}
	return c, path, nil
}

func saveCache(path string, c *cache.Cache) error {
	if err := cache.Save(path, c); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+filepath.Dir(path))
	}
	return nil
}

// discoveryOptions builds browser options from config.
func discoveryOptions(ctx context.Context) (browser.Options, error) {
	c := currentConfig()
	customs, err := c.CustomKinds()
	if err != nil {
		return browser.Options{}, errors.NewConfigError(err)
	}
	return browser.Options{
		Probe:    versionProbe,
		Customs:  customs,
		Resolver: c.Resolver(logging.FromContext(ctx)),
	}, nil
}

// writeLastURL records uri next to the cache. Failures are logged only.
func writeLastURL(ctx context.Context, cacheFile, uri string) {
	path := paths.LastURLFile(cacheFile)
	logger := logging.FromContext(ctx)
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		logger.Error("could not create cache directory", "path", path, "error", err)
		return
	}
	if err := fileutil.AtomicWriteFile(path, []byte(uri), 0o600); err != nil {
		logger.Error("could not record last URL", "path", path, "error", err)
	}
}

// backupManager returns the snapshot store beside the cache.
func backupManager() (*backup.Manager, error) {
	path, err := cachePath()
	if err != nil {
		return nil, err
	}
	return backup.NewManager(paths.BackupDir(path), backup.WithVersion(cmd.Version)), nil
}

// snapshot saves path under target before it is overwritten. Failures are
// logged only.
func snapshot(ctx context.Context, target, path string) {
	logger := logging.FromContext(ctx)
	mgr, err := backupManager()
	if err != nil {
		logger.Warn("backup skipped", "target", target, "error", err)
		return
	}
	m, err := mgr.Backup(target, path)
	switch {
	case errors.Is(err, backup.ErrNothingToBackUp):
	case err != nil:
		logger.Warn("backup failed", "target", target, "path", path, "error", err)
	default:
		logger.Info("saved backup", "target", target, "id", m.ID)
	}
}
