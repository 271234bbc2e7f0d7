package browser

import (
	"os"
	"path/filepath"
)

// DefaultSearchDirs returns the platform's well-known installation
// directories followed by extra, keeping only directories that exist.
// Duplicates are removed.
func DefaultSearchDirs(extra ...string) []string {
	candidates := append(platformSearchDirs(), extra...)

	seen := make(map[string]bool, len(candidates))
	var dirs []string
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}
