package doctor

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/thoreinstein/plinks/internal/browser"
	"github.com/thoreinstein/plinks/internal/cache"
	"github.com/thoreinstein/plinks/internal/config"
	"github.com/thoreinstein/plinks/internal/errors"
	"github.com/thoreinstein/plinks/internal/logging"
)

// ConfigCheck validates the loaded configuration.
type ConfigCheck struct {
	cfg     *config.Config
	file    string
	loadErr error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for cfg, read from file. loadErr is the
// error returned when the file was read, if any.
func NewConfigCheck(cfg *config.Config, file string, loadErr error) *ConfigCheck {
	return &ConfigCheck{cfg: cfg, file: file, loadErr: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run loads and validates the configuration.
func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"file": c.file},
	}

	if c.loadErr != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("config file could not be loaded: %v", c.loadErr)
		result.FixHint = "fix the YAML or run: plinks init --force"
		return result
	}

	cfg := c.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		problems := make([]string, 0, len(errs))
		for _, err := range errs {
			problems = append(problems, err.Error())
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d configuration problem(s)", len(errs))
		result.Details["problems"] = problems
		result.FixHint = "edit the config file or run: plinks init --force"
		return result
	}

	if c.file == "" {
		result.Status = SeverityInfo
		result.Message = "no config file found; using defaults"
		result.FixHint = "run: plinks init"
		return result
	}

	result.Status = SeverityPass
	result.Message = "configuration is valid"
	return result
}

// RegistryCheck reads the profiles.ini registry of one browser family.
type RegistryCheck struct {
	resolver *browser.Resolver
	family   string
}

var _ Check = (*RegistryCheck)(nil)

// NewRegistryCheck creates a registry check for family.
func NewRegistryCheck(resolver *browser.Resolver, family string) *RegistryCheck {
	return &RegistryCheck{resolver: resolver, family: family}
}

// Name returns the unique identifier for this check.
func (c *RegistryCheck) Name() string {
	return "registry-" + c.family
}

// Category returns the grouping for this check.
func (c *RegistryCheck) Category() string {
	return "registry"
}

// Run parses the family's registry file.
func (c *RegistryCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	path := c.resolver.RegistryPath(c.family)
	if path == "" {
		result.Status = SeverityInfo
		result.Message = "no registry location on this system"
		return result
	}
	result.Details = map[string]any{"path": path}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		result.Status = SeverityInfo
		result.Message = "registry file not found; " + c.family + " is probably not installed"
		return result
	}

	profiles, err := browser.ParseRegistry(path, logging.FromContext(ctx))
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		result.FixHint = "check that the file is readable"
		return result
	}

	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	result.Details["profiles"] = names

	if len(profiles) == 0 {
		result.Status = SeverityWarning
		result.Message = "registry file lists no usable profiles"
		result.FixHint = "create a profile in the browser's profile manager"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d profile(s) registered", len(profiles))
	return result
}

// CacheCheck verifies that the installation cache can be read.
type CacheCheck struct {
	path string
}

var _ Check = (*CacheCheck)(nil)

// NewCacheCheck creates a check for the cache at path.
func NewCacheCheck(path string) *CacheCheck {
	return &CacheCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *CacheCheck) Name() string {
	return "cache"
}

// Category returns the grouping for this check.
func (c *CacheCheck) Category() string {
	return "cache"
}

// Run loads the cache.
func (c *CacheCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	loaded, err := cache.Load(ctx, c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = err.Error()
		if errors.Is(err, errors.ErrUnsupportedVersion) {
			result.FixHint = "upgrade plinks or remove " + c.path
		} else {
			result.FixHint = "run: plinks scan"
		}
		return result
	}

	result.Details["installations"] = len(loaded.Installations)
	if len(loaded.Installations) == 0 {
		result.Status = SeverityWarning
		result.Message = "no installations cached"
		result.FixHint = "run: plinks scan"
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d installation(s) cached", len(loaded.Installations))
	return result
}

// InstallationCheck verifies that cached installations still exist on disk.
type InstallationCheck struct {
	path string
}

var _ Check = (*InstallationCheck)(nil)

// NewInstallationCheck creates a check for the installations cached at path.
func NewInstallationCheck(path string) *InstallationCheck {
	return &InstallationCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *InstallationCheck) Name() string {
	return "installations"
}

// Category returns the grouping for this check.
func (c *InstallationCheck) Category() string {
	return "cache"
}

// Run stats every executable and profile directory recorded in the cache.
func (c *InstallationCheck) Run(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
	}

	loaded, err := cache.Load(ctx, c.path)
	if err != nil {
		result.Status = SeverityInfo
		result.Message = "cache unavailable; skipped"
		return result
	}

	status := SeverityPass
	issues := make(map[string][]string)
	for i := range loaded.Installations {
		inst := &loaded.Installations[i]
		sev, found := inspectInstallation(inst)
		if len(found) > 0 {
			issues[inst.DisplayName()] = found
		}
		status = max(status, sev)
	}

	result.Status = status
	switch status {
	case SeverityPass:
		result.Message = fmt.Sprintf("%d installation(s) intact", len(loaded.Installations))
	case SeverityError:
		result.Message = "cached installations are missing from disk"
		result.FixHint = "run: plinks scan"
	default:
		result.Message = "cached installations reference missing files"
		result.FixHint = "run: plinks scan"
	}
	if len(issues) > 0 {
		result.Details = map[string]any{"issues": issues}
	}
	return result
}

// inspectInstallation returns the problems found for inst and their
// worst severity. A missing primary executable is an error.
func inspectInstallation(inst *browser.Installation) (Severity, []string) {
	status := SeverityPass
	var issues []string

	if !exists(inst.ExePath) {
		issues = append(issues, "executable missing: "+inst.ExePath)
		status = SeverityError
	}
	for _, alias := range inst.Aliases {
		if !exists(alias) {
			issues = append(issues, "alias missing: "+alias)
			status = max(status, SeverityWarning)
		}
	}
	for _, p := range inst.Profiles {
		if !exists(p.Path) {
			issues = append(issues, "profile directory missing: "+p.Path)
			status = max(status, SeverityWarning)
		}
	}

	exes := inst.Executables()
	profiles := make([]string, 0, len(inst.Preferred))
	for profile := range inst.Preferred {
		profiles = append(profiles, profile)
	}
	slices.Sort(profiles)
	for _, profile := range profiles {
		if exe := inst.Preferred[profile]; !slices.Contains(exes, exe) {
			issues = append(issues, "preferred executable is not a launcher: "+exe)
			status = max(status, SeverityWarning)
		}
	}

	return status, issues
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
