package backup

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/plinks/pkg/fileutil"
)

const manifestName = "manifest.toml"

// Manager handles snapshot creation, restoration, and retention.
type Manager struct {
	rootDir        string
	retentionCount int
	version        string
	now            func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithRetentionCount sets the number of snapshots to retain per target.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.retentionCount = n
		}
	}
}

// WithVersion sets the build version recorded in manifests.
func WithVersion(v string) Option {
	return func(m *Manager) {
		m.version = v
	}
}

// NewManager creates a Manager storing snapshots under rootDir.
func NewManager(rootDir string, opts ...Option) *Manager {
	m := &Manager{
		rootDir:        rootDir,
		retentionCount: DefaultRetentionCount,
		version:        "dev",
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies path into a new snapshot for target and prunes snapshots
// beyond the retention count. A missing path returns ErrNothingToBackUp.
func (m *Manager) Backup(target, path string) (*Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %s", path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNothingToBackUp, "%s does not exist", abs)
		}
		return nil, errors.Wrapf(err, "stat %s", abs)
	}
	if info.IsDir() {
		return nil, errors.Newf("%s is a directory", abs)
	}

	created := m.now().UTC()
	id, dir, err := m.createSnapshotDir(target, created)
	if err != nil {
		return nil, err
	}

	name := filepath.Base(abs)
	hash, mode, err := copyFile(abs, filepath.Join(dir, name))
	if err != nil {
		os.RemoveAll(dir)
		return nil, errors.Wrapf(err, "backing up %s", abs)
	}

	manifest := &Manifest{
		Version:   ManifestVersion,
		CreatedAt: created,
		Target:    target,
		File: File{
			OriginalPath: abs,
			Name:         name,
			SHA256Hash:   hash,
			Mode:         mode,
		},
		PlinksVersion: m.version,
		ID:            id,
	}
	if err := fileutil.AtomicWriteTOML(filepath.Join(dir, manifestName), manifest, 0o644); err != nil {
		os.RemoveAll(dir)
		return nil, errors.Wrap(err, "writing manifest")
	}

	if err := m.Prune(target, m.retentionCount); err != nil {
		return manifest, errors.Wrap(err, "pruning old backups")
	}
	return manifest, nil
}

// createSnapshotDir creates a uniquely named snapshot directory. Snapshots
// taken within the same second get a numeric suffix.
func (m *Manager) createSnapshotDir(target string, created time.Time) (string, string, error) {
	targetDir := filepath.Join(m.rootDir, target)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", "", errors.Wrap(err, "creating backup directory")
	}

	base := created.Format("20060102T150405")
	for n := 0; ; n++ {
		id := base
		if n > 0 {
			id = base + "-" + strconv.Itoa(n)
		}
		dir := filepath.Join(targetDir, id)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", "", errors.Wrap(err, "creating backup directory")
		}
	}
}

// Restore copies a snapshot back to its original location. The current
// file, if any, is snapshotted first.
func (m *Manager) Restore(target, id string) (*Manifest, error) {
	manifest, err := m.Get(target, id)
	if err != nil {
		return nil, err
	}

	src := filepath.Join(m.rootDir, target, manifest.ID, manifest.File.Name)
	hash, err := hashFile(src)
	if err != nil {
		return nil, errors.Wrapf(err, "reading backup %s", manifest.ID)
	}
	if hash != manifest.File.SHA256Hash {
		return nil, errors.Wrapf(ErrBackupCorrupted, "backup %s hash mismatch", manifest.ID)
	}

	if _, err := m.Backup(target, manifest.File.OriginalPath); err != nil && !errors.Is(err, ErrNothingToBackUp) {
		return nil, errors.Wrap(err, "saving current file before restore")
	}

	if err := os.MkdirAll(filepath.Dir(manifest.File.OriginalPath), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating directory for %s", manifest.File.OriginalPath)
	}
	if _, _, err := copyFile(src, manifest.File.OriginalPath); err != nil {
		return nil, errors.Wrapf(err, "restoring %s", manifest.File.OriginalPath)
	}
	return manifest, nil
}

// Latest returns the newest snapshot for target.
func (m *Manager) Latest(target string) (*Manifest, error) {
	manifests, err := m.List(target)
	if err != nil {
		return nil, err
	}
	return &manifests[0], nil
}

// List returns all snapshots for target, newest first.
func (m *Manager) List(target string) ([]Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}

	entries, err := os.ReadDir(filepath.Join(m.rootDir, target))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	manifests := make([]Manifest, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		manifest, err := m.Get(target, entry.Name())
		if err != nil {
			// Skip invalid snapshot directories
			continue
		}
		manifests = append(manifests, *manifest)
	}

	if len(manifests) == 0 {
		return nil, ErrNoBackupsFound
	}

	slices.SortFunc(manifests, func(a, b Manifest) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return manifests, nil
}

// Prune removes snapshots beyond the newest keep for target.
func (m *Manager) Prune(target string, keep int) error {
	if keep < 0 {
		return errors.New("keep must be non-negative")
	}

	manifests, err := m.List(target)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}

	for i := keep; i < len(manifests); i++ {
		if err := os.RemoveAll(filepath.Join(m.rootDir, target, manifests[i].ID)); err != nil {
			return errors.Wrapf(err, "removing backup %s", manifests[i].ID)
		}
	}
	return nil
}

// Get returns the manifest of one snapshot.
func (m *Manager) Get(target, id string) (*Manifest, error) {
	if target == "" {
		return nil, errors.New("target is required")
	}
	if id == "" {
		return nil, errors.New("backup ID is required")
	}

	data, err := fileutil.ReadFileWithLimit(filepath.Join(m.rootDir, target, id, manifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNoBackupsFound, "backup %s not found", id)
		}
		return nil, errors.Wrap(err, "reading manifest")
	}

	var manifest Manifest
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(&manifest); err != nil {
		return nil, errors.Wrap(err, "parsing manifest")
	}
	if manifest.Version > ManifestVersion {
		return nil, errors.Newf("backup %s has manifest version %d", id, manifest.Version)
	}

	manifest.ID = id
	return &manifest, nil
}

// hashFile computes the SHA256 hash of a file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "opening file")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "reading file")
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// copyFile copies src to dst, returning the SHA256 hash and mode of src.
// dst ends up with the source file's permissions.
func copyFile(src, dst string) (hash string, mode fs.FileMode, err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return "", 0, errors.Wrap(err, "opening source file")
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return "", 0, errors.Wrap(err, "stat source file")
	}
	mode = srcInfo.Mode().Perm()

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, errors.Wrap(err, "creating destination file")
	}

	// Hash while copying
	h := sha256.New()
	w := io.MultiWriter(dstFile, h)

	if _, err := io.Copy(w, srcFile); err != nil {
		dstFile.Close()
		return "", 0, errors.Wrap(err, "copying file")
	}

	if err := dstFile.Close(); err != nil {
		return "", 0, errors.Wrap(err, "closing destination file")
	}

	if err := os.Chmod(dst, mode); err != nil {
		return "", 0, errors.Wrap(err, "setting permissions")
	}

	return hex.EncodeToString(h.Sum(nil)), mode, nil
}
