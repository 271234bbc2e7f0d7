package backup

import (
	"io/fs"
	"time"

	"github.com/cockroachdb/errors"
)

// Manifest format version for forward compatibility.
const ManifestVersion = 1

// DefaultRetentionCount is the default number of snapshots kept per target.
const DefaultRetentionCount = 5

// Snapshot targets.
const (
	TargetConfig = "config"
	TargetCache  = "cache"
)

// Sentinel errors for backup operations.
var (
	// ErrNoBackupsFound indicates no snapshots exist for the target.
	ErrNoBackupsFound = errors.New("no backups found")

	// ErrNothingToBackUp indicates the file to snapshot does not exist.
	ErrNothingToBackUp = errors.New("nothing to back up")

	// ErrBackupCorrupted indicates the snapshot no longer matches its recorded hash.
	ErrBackupCorrupted = errors.New("backup corrupted")
)

// Manifest describes one snapshot. It is stored as manifest.toml in the
// snapshot directory.
type Manifest struct {
	Version   int       `toml:"version"`
	CreatedAt time.Time `toml:"created_at"`

	// Target is the kind of file saved: config or cache.
	Target string `toml:"target"`

	File File `toml:"file"`

	// PlinksVersion is the build that wrote the snapshot.
	PlinksVersion string `toml:"plinks_version"`

	// ID is the snapshot directory name, e.g. 20260123T100712.
	// Populated when loading; not stored.
	ID string `toml:"-"`
}

// File records the saved copy of one file.
type File struct {
	// OriginalPath is the absolute path the file was copied from.
	OriginalPath string `toml:"original_path"`

	// Name is the copy's file name inside the snapshot directory.
	Name string `toml:"name"`

	// SHA256Hash is the hex-encoded SHA256 hash of the file contents.
	SHA256Hash string `toml:"sha256_hash"`

	// Mode is the file's permission bits.
	Mode fs.FileMode `toml:"mode"`
}
