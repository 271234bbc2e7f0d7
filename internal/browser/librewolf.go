package browser

import (
	"path/filepath"

	"github.com/thoreinstein/plinks/internal/paths"
)

type librewolf struct{}

func (librewolf) ID() KindID             { return KindLibrewolf }
func (librewolf) Name() string           { return "Librewolf" }
func (librewolf) ExecutableName() string { return platformExe("librewolf") }

func (librewolf) Icon(installDir string) string {
	return existing(filepath.Join(installDir, visualElements))
}

func (librewolf) Profiles(_ string, r *Resolver) []Profile {
	return r.familyProfiles(paths.FamilyLibrewolf)
}

func (librewolf) Args(profilePath, uri string) []string {
	return builtinArgs(profilePath, uri)
}

type librewolfPortable struct{}

var librewolfPortableProfileDir = filepath.Join("Profiles", "Default")

func (librewolfPortable) ID() KindID             { return KindLibrewolfPortable }
func (librewolfPortable) Name() string           { return "Librewolf Portable" }
func (librewolfPortable) ExecutableName() string { return "LibreWolf-Portable.exe" }

func (librewolfPortable) Icon(installDir string) string {
	return existing(filepath.Join(installDir, "LibreWolf", visualElements))
}

func (p librewolfPortable) Profiles(installDir string, r *Resolver) []Profile {
	return portableProfiles(p, installDir, librewolfPortableProfileDir, paths.FamilyLibrewolf, r)
}

func (librewolfPortable) Args(profilePath, uri string) []string {
	return builtinArgs(profilePath, uri)
}
