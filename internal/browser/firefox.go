package browser

import (
	"path/filepath"

	"github.com/thoreinstein/plinks/internal/paths"
)

// firefox covers the four release channels, which differ only by name.
type firefox struct {
	id   KindID
	name string
}

func (f firefox) ID() KindID             { return f.id }
func (f firefox) Name() string           { return f.name }
func (f firefox) ExecutableName() string { return platformExe("firefox") }

func (f firefox) Icon(installDir string) string {
	return existing(filepath.Join(installDir, visualElements))
}

func (f firefox) Profiles(_ string, r *Resolver) []Profile {
	return r.familyProfiles(paths.FamilyFirefox)
}

func (f firefox) Args(profilePath, uri string) []string {
	return builtinArgs(profilePath, uri)
}

// firefoxPortable is the PortableApps.com Firefox launcher.
type firefoxPortable struct{}

var firefoxPortableProfileDir = filepath.Join("Data", "profile")

func (firefoxPortable) ID() KindID             { return KindFirefoxPortable }
func (firefoxPortable) Name() string           { return "Firefox Portable" }
func (firefoxPortable) ExecutableName() string { return "FirefoxPortable.exe" }

func (firefoxPortable) Icon(installDir string) string {
	return existing(filepath.Join(installDir, "App", "Firefox64", visualElements))
}

func (p firefoxPortable) Profiles(installDir string, r *Resolver) []Profile {
	return portableProfiles(p, installDir, firefoxPortableProfileDir, paths.FamilyFirefox, r)
}

func (firefoxPortable) Args(profilePath, uri string) []string {
	return builtinArgs(profilePath, uri)
}

// portableProfiles synthesizes the bundled profile, if present, ahead of
// the family's registry profiles.
func portableProfiles(k Kind, installDir, rel, family string, r *Resolver) []Profile {
	var profiles []Profile
	if dir := existing(filepath.Join(installDir, rel)); dir != "" {
		profiles = append(profiles, Profile{Name: k.Name(), Path: dir})
	}
	return append(profiles, r.familyProfiles(family)...)
}
