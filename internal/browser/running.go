package browser

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v4/process"
)

// ProcessLister returns the executable paths of running processes.
type ProcessLister func(ctx context.Context) ([]string, error)

// ProcessExecutables lists the executables of running processes.
// Processes whose executable cannot be read are skipped.
func ProcessExecutables(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listing processes")
	}

	exes := make([]string, 0, len(procs))
	for _, p := range procs {
		exe, err := p.ExeWithContext(ctx)
		if err != nil || exe == "" {
			continue
		}
		exes = append(exes, exe)
	}
	return exes, nil
}

// RunningSet is a lookup of running executables.
type RunningSet map[string]struct{}

// NewRunningSet indexes exes by normalized path.
func NewRunningSet(exes []string) RunningSet {
	s := make(RunningSet, len(exes))
	for _, exe := range exes {
		s[normalizeExe(exe)] = struct{}{}
	}
	return s
}

// Contains reports whether path, or the file it links to, is running.
func (s RunningSet) Contains(path string) bool {
	if len(s) == 0 {
		return false
	}
	if _, ok := s[normalizeExe(path)]; ok {
		return true
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		_, ok := s[normalizeExe(resolved)]
		return ok
	}
	return false
}

// Running reports whether any launcher of the installation is running.
func (i *Installation) Running(s RunningSet) bool {
	for _, exe := range i.Executables() {
		if s.Contains(exe) {
			return true
		}
	}
	return false
}

func normalizeExe(path string) string {
	path = filepath.Clean(path)
	if runtime.GOOS == "windows" {
		return strings.ToLower(path)
	}
	return path
}
