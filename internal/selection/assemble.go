package selection

import (
	"github.com/thoreinstein/plinks/internal/browser"
)

// Descriptor is everything needed to launch a browser on a URI.
type Descriptor struct {
	URI        string
	Kind       browser.Kind
	Executable string
	Profile    browser.Profile
}

// Args returns the kind's launch arguments for the profile and URI.
func (d *Descriptor) Args() []string {
	return d.Kind.Args(d.Profile.Path, d.URI)
}

// Assemble builds a Descriptor from a finished session. It reports false
// when the installation, profile or executable is missing.
func Assemble(s *Session) (*Descriptor, bool) {
	inst, ok := s.installation()
	if !ok || s.Profile == nil || s.Executable == "" {
		return nil, false
	}
	return &Descriptor{
		URI:        s.URI,
		Kind:       inst.Kind,
		Executable: s.Executable,
		Profile:    *s.Profile,
	}, true
}
