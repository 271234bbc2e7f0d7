package browser

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Validation errors for user-defined kinds.
var (
	// ErrNoProfileSource indicates a Custom kind with neither a registry file nor static profiles.
	ErrNoProfileSource = errors.New("custom browser needs a registry file or static profiles")

	// ErrTemplateIndex indicates an argument template slot index is out of range or reused.
	ErrTemplateIndex = errors.New("invalid argument template index")
)

// ArgTemplate is a literal argument list with two slots reserved for the
// profile path and the target URI.
type ArgTemplate struct {
	Args         []string
	ProfileIndex int
	URIIndex     int
}

// ConstructArgs copies the template and fills the profile and URI slots.
// Both indices must be valid; Validate checks this when the definition is loaded.
func (t ArgTemplate) ConstructArgs(profilePath, uri string) []string {
	args := make([]string, len(t.Args))
	copy(args, t.Args)
	args[t.ProfileIndex] = profilePath
	args[t.URIIndex] = uri
	return args
}

// Validate reports whether both slots address distinct positions in Args.
func (t ArgTemplate) Validate() error {
	n := len(t.Args)
	if t.ProfileIndex < 0 || t.ProfileIndex >= n {
		return errors.Wrapf(ErrTemplateIndex, "profile index %d out of range [0-%d)", t.ProfileIndex, n)
	}
	if t.URIIndex < 0 || t.URIIndex >= n {
		return errors.Wrapf(ErrTemplateIndex, "uri index %d out of range [0-%d)", t.URIIndex, n)
	}
	if t.ProfileIndex == t.URIIndex {
		return errors.Wrapf(ErrTemplateIndex, "profile and uri share index %d", t.URIIndex)
	}
	return nil
}

// Custom is a user-defined browser kind.
type Custom struct {
	// Executable is the launcher filename inside the installation directory.
	Executable string
	// DisplayName is shown in prompts.
	DisplayName string
	// Template builds the launch arguments.
	Template ArgTemplate
	// IconPath is an optional icon, relative to the installation directory
	// unless absolute.
	IconPath string
	// RegistryFile is an optional profiles.ini to read profiles from.
	RegistryFile string
	// StaticProfiles are always offered after the registry profiles.
	StaticProfiles []Profile
}

// Validate checks the definition invariants.
func (c *Custom) Validate() error {
	if c.Executable == "" {
		return errors.Newf("custom browser %q: executable is required", c.DisplayName)
	}
	if c.DisplayName == "" {
		return errors.Newf("custom browser %q: name is required", c.Executable)
	}
	if c.RegistryFile == "" && len(c.StaticProfiles) == 0 {
		return errors.Wrapf(ErrNoProfileSource, "custom browser %q", c.DisplayName)
	}
	if err := c.Template.Validate(); err != nil {
		return errors.Wrapf(err, "custom browser %q", c.DisplayName)
	}
	return nil
}

func (c *Custom) ID() KindID             { return KindCustom }
func (c *Custom) Name() string           { return c.DisplayName }
func (c *Custom) ExecutableName() string { return c.Executable }

func (c *Custom) Icon(installDir string) string {
	if c.IconPath == "" {
		return ""
	}
	if filepath.IsAbs(c.IconPath) {
		return c.IconPath
	}
	return filepath.Join(installDir, c.IconPath)
}

func (c *Custom) Profiles(_ string, r *Resolver) []Profile {
	var profiles []Profile
	if c.RegistryFile != "" {
		profiles = append(profiles, r.fileProfiles(c.RegistryFile)...)
	}
	return append(profiles, c.StaticProfiles...)
}

func (c *Custom) Args(profilePath, uri string) []string {
	return c.Template.ConstructArgs(profilePath, uri)
}
