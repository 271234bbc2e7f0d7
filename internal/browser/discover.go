package browser

import (
	"context"
	"path/filepath"

	"github.com/thoreinstein/plinks/internal/logging"
)

// Options configures detection and profile resolution during discovery.
type Options struct {
	// Probe classifies the Firefox channel. Nil classifies every Firefox as stable.
	Probe VersionProbe
	// Customs are matched when no built-in launcher is found.
	Customs []*Custom
	// Resolver locates registry files. Nil uses the platform defaults.
	Resolver *Resolver
}

// Discover builds installations for dirs. A directory that fails detection
// or has no profiles is logged and skipped. A directory whose launcher
// resolves to an already discovered installation becomes an alias of it.
func Discover(ctx context.Context, dirs []string, opts Options) []Installation {
	logger := logging.FromContext(ctx)

	var found []Installation
	for _, dir := range dirs {
		if ctx.Err() != nil {
			break
		}

		inst, err := NewInstallation(ctx, dir, opts)
		if err != nil {
			logger.Warn("skipping directory", "dir", dir, "error", err)
			continue
		}

		if idx := indexSameDir(found, inst.Dir()); idx >= 0 {
			if _, err := found[idx].AddAlias(inst.ExePath); err != nil {
				logger.Warn("could not record alias", "dir", dir, "error", err)
			}
			continue
		}

		logger.Info("discovered installation", "name", inst.DisplayName(), "exe", inst.ExePath,
			"profiles", len(inst.Profiles))
		found = append(found, *inst)
	}
	return found
}

func indexSameDir(insts []Installation, dir string) int {
	for i := range insts {
		if same, err := sameDir(insts[i].Dir(), dir); err == nil && same {
			return i
		}
	}
	return -1
}

// Regenerate carries user state from prev onto a fresh discovery. Matching
// is by primary executable. Preferred entries and the last used profile
// survive only if their profile still exists.
func Regenerate(prev, fresh []Installation) []Installation {
	byExe := make(map[string]*Installation, len(prev))
	for i := range prev {
		byExe[filepath.Clean(prev[i].ExePath)] = &prev[i]
	}

	out := make([]Installation, len(fresh))
	for i, inst := range fresh {
		old, ok := byExe[filepath.Clean(inst.ExePath)]
		if !ok {
			out[i] = inst
			continue
		}

		if inst.NameOverride == "" {
			inst.NameOverride = old.NameOverride
		}
		inst.Aliases = mergeAliases(inst.Aliases, old.Aliases, inst.ExePath)

		preferred := make(map[string]string, len(inst.Preferred)+len(old.Preferred))
		for profile, exe := range old.Preferred {
			if inst.HasProfile(profile) {
				preferred[profile] = exe
			}
		}
		for profile, exe := range inst.Preferred {
			preferred[profile] = exe
		}
		inst.Preferred = preferred

		if inst.LastUsed == nil && old.LastUsed != nil && inst.HasProfile(old.LastUsed.Path) {
			last := *old.LastUsed
			inst.LastUsed = &last
		}
		out[i] = inst
	}
	return out
}

func mergeAliases(cur, old []string, exe string) []string {
	seen := make(map[string]bool, len(cur)+len(old))
	merged := make([]string, 0, len(cur)+len(old))
	for _, a := range append(append([]string{}, cur...), old...) {
		if a == exe || seen[a] {
			continue
		}
		seen[a] = true
		merged = append(merged, a)
	}
	return merged
}
