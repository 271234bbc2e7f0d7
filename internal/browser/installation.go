package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
)

// Installation errors.
var (
	// ErrUnknownBrowser indicates a directory with no recognized launcher.
	ErrUnknownBrowser = errors.New("no supported browser found")

	// ErrNoProfiles indicates a browser whose profiles could not be resolved.
	ErrNoProfiles = errors.New("no profiles found")
)

// Installation is one browser install with a snapshot of its profiles.
type Installation struct {
	// NameOverride replaces the kind name in prompts when set.
	NameOverride string
	Kind         Kind
	// ExePath is the primary launcher.
	ExePath string
	// Aliases are alternative launchers in the same directory.
	Aliases []string
	// Preferred maps a profile path to the launcher last chosen for it.
	Preferred map[string]string
	// Profiles is never empty for a discovered installation.
	Profiles []Profile
	// LastUsed is the profile of the most recent completed selection.
	LastUsed *Profile
}

// NewInstallation detects the browser in dir and snapshots its profiles.
func NewInstallation(ctx context.Context, dir string, opts Options) (*Installation, error) {
	kind, exe, err := detect(ctx, dir, opts.Probe)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		if c := DetectCustom(dir, opts.Customs); c != nil {
			kind, exe = c, c.Executable
		}
	}
	if kind == nil {
		return nil, errors.Wrapf(ErrUnknownBrowser, "in %s", dir)
	}

	profiles := kind.Profiles(dir, opts.Resolver)
	if len(profiles) == 0 {
		return nil, errors.Wrapf(ErrNoProfiles, "for %s in %s", kind.Name(), dir)
	}

	return &Installation{
		Kind:      kind,
		ExePath:   filepath.Join(dir, exe),
		Preferred: make(map[string]string),
		Profiles:  profiles,
	}, nil
}

// DisplayName returns the override or the kind name.
func (i *Installation) DisplayName() string {
	if i.NameOverride != "" {
		return i.NameOverride
	}
	return i.Kind.Name()
}

// Dir returns the installation directory.
func (i *Installation) Dir() string {
	return filepath.Dir(i.ExePath)
}

// Icon returns the kind's icon for this installation.
func (i *Installation) Icon() string {
	return i.Kind.Icon(i.Dir())
}

// HasProfile reports whether a profile with path exists in the snapshot.
func (i *Installation) HasProfile(path string) bool {
	return slices.ContainsFunc(i.Profiles, func(p Profile) bool { return p.Path == path })
}

// PreferredFor returns the memoized executable for a profile.
func (i *Installation) PreferredFor(profilePath string) (string, bool) {
	exe, ok := i.Preferred[profilePath]
	return exe, ok
}

// SetPreferred memoizes exe for a profile of this installation.
func (i *Installation) SetPreferred(profilePath, exe string) {
	if i.Preferred == nil {
		i.Preferred = make(map[string]string)
	}
	i.Preferred[profilePath] = exe
}

// Executables returns the primary launcher followed by the aliases.
func (i *Installation) Executables() []string {
	return append([]string{i.ExePath}, i.Aliases...)
}

// AddAlias records path as an alternative launcher. path may name the
// launcher or its directory; it must resolve to the installation directory.
// It reports whether the alias is now present.
func (i *Installation) AddAlias(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, errors.Wrapf(err, "resolving alias %s", path)
	}

	dir := abs
	info, err := os.Stat(abs)
	if err != nil {
		return false, errors.Wrapf(err, "alias %s", path)
	}
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	same, err := sameDir(dir, i.Dir())
	if err != nil {
		return false, err
	}
	if !same {
		return false, errors.Newf("alias %s is not in installation directory %s", path, i.Dir())
	}

	alias := abs
	if info.IsDir() {
		alias = filepath.Join(abs, filepath.Base(i.ExePath))
	}
	if alias == i.ExePath {
		return false, nil
	}
	if slices.Contains(i.Aliases, alias) {
		return true, nil
	}
	i.Aliases = append(i.Aliases, alias)
	return true, nil
}

// RemoveAlias drops path from the aliases and reports whether it was present.
func (i *Installation) RemoveAlias(path string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	idx := slices.Index(i.Aliases, path)
	if idx < 0 {
		return false
	}
	i.Aliases = slices.Delete(i.Aliases, idx, idx+1)
	return true
}

// String formats the installation for listings.
func (i *Installation) String() string {
	return fmt.Sprintf("%s (%s)", i.DisplayName(), i.ExePath)
}

func sameDir(a, b string) (bool, error) {
	ra, err := filepath.EvalSymlinks(a)
	if err != nil {
		return false, errors.Wrapf(err, "resolving %s", a)
	}
	rb, err := filepath.EvalSymlinks(b)
	if err != nil {
		return false, errors.Wrapf(err, "resolving %s", b)
	}
	return ra == rb, nil
}
