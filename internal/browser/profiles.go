package browser

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/thoreinstein/plinks/internal/paths"
)

// Profile is a named user-data directory.
type Profile struct {
	Name string
	Path string
}

// String returns the profile name for prompts.
func (p Profile) String() string {
	return p.Name
}

// IsOpen reports whether a browser currently holds the profile lock.
// Permission problems read as "not open".
func (p Profile) IsOpen() bool {
	if runtime.GOOS == "windows" {
		lock := filepath.Join(p.Path, "parent.lock")
		if _, err := os.Stat(lock); err != nil {
			return false
		}
		// A running browser opens parent.lock exclusively.
		f, err := os.Open(lock)
		if err != nil {
			return true
		}
		f.Close()
		return false
	}

	// On Unix the running browser leaves a "lock" symlink to host:+pid.
	info, err := os.Lstat(filepath.Join(p.Path, "lock"))
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeSymlink != 0
}

// Resolver locates family registry files for profile enumeration.
// The zero value uses the platform defaults and slog.Default().
type Resolver struct {
	// RegistryFile maps a family to its profiles.ini. Nil uses paths.RegistryFile.
	RegistryFile func(family string) string
	// Logger receives parse warnings. Nil uses slog.Default().
	Logger *slog.Logger
}

func (r *Resolver) logger() *slog.Logger {
	if r == nil || r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

// RegistryPath returns the registry file used for family.
func (r *Resolver) RegistryPath(family string) string {
	if r == nil || r.RegistryFile == nil {
		return paths.RegistryFile(family)
	}
	if path := r.RegistryFile(family); path != "" {
		return path
	}
	return paths.RegistryFile(family)
}

func (r *Resolver) familyProfiles(family string) []Profile {
	path := r.RegistryPath(family)
	if path == "" {
		return nil
	}
	return r.fileProfiles(path)
}

// fileProfiles reads a registry file; an unreadable file contributes nothing.
func (r *Resolver) fileProfiles(path string) []Profile {
	profiles, err := ParseRegistry(path, r.logger())
	if err != nil {
		r.logger().Debug("registry file unavailable", "path", path, "error", err)
		return nil
	}
	return profiles
}

// FindProfiles enumerates the profiles of kind for an installation
// directory using the platform registry locations.
func FindProfiles(kind Kind, installDir string) []Profile {
	return kind.Profiles(installDir, nil)
}
