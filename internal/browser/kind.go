package browser

import (
	"os"
	"path/filepath"
	"runtime"
)

// KindID is the stable identifier persisted for a Kind.
type KindID string

// Known kind identifiers.
const (
	KindFirefox           KindID = "firefox"
	KindFirefoxNightly    KindID = "firefox-nightly"
	KindFirefoxBeta       KindID = "firefox-beta"
	KindFirefoxDeveloper  KindID = "firefox-developer"
	KindFirefoxPortable   KindID = "firefox-portable"
	KindLibrewolf         KindID = "librewolf"
	KindLibrewolfPortable KindID = "librewolf-portable"
	KindCustom            KindID = "custom"
)

// Kind is the capability set shared by every supported browser.
type Kind interface {
	// ID returns the persisted identifier.
	ID() KindID

	// Name returns the human-readable browser name.
	Name() string

	// ExecutableName returns the launcher filename inside an installation directory.
	ExecutableName() string

	// Icon returns the icon path for an installation directory, or "" if none exists.
	Icon(installDir string) string

	// Profiles enumerates the profiles usable by an installation directory.
	// It never fails; an empty result means no profiles could be resolved.
	Profiles(installDir string, r *Resolver) []Profile

	// Args returns the launch arguments that open uri in the given profile.
	Args(profilePath, uri string) []string
}

// Built-in kinds.
var (
	Firefox           Kind = firefox{id: KindFirefox, name: "Firefox"}
	FirefoxNightly    Kind = firefox{id: KindFirefoxNightly, name: "Firefox Nightly"}
	FirefoxBeta       Kind = firefox{id: KindFirefoxBeta, name: "Firefox Beta"}
	FirefoxDeveloper  Kind = firefox{id: KindFirefoxDeveloper, name: "Firefox Developer"}
	FirefoxPortable   Kind = firefoxPortable{}
	Librewolf         Kind = librewolf{}
	LibrewolfPortable Kind = librewolfPortable{}
)

// Builtins returns every built-in kind in a stable order.
func Builtins() []Kind {
	return []Kind{
		Firefox,
		FirefoxNightly,
		FirefoxBeta,
		FirefoxDeveloper,
		FirefoxPortable,
		Librewolf,
		LibrewolfPortable,
	}
}

// ByID returns the built-in kind with the given identifier.
// Custom kinds carry their own definition and are never returned here.
func ByID(id KindID) (Kind, bool) {
	for _, k := range Builtins() {
		if k.ID() == id {
			return k, true
		}
	}
	return nil, false
}

// builtinArgs is the launch convention shared by all built-in kinds.
func builtinArgs(profilePath, uri string) []string {
	return []string{"--profile", profilePath, "-url", uri}
}

// platformExe appends ".exe" on Windows.
func platformExe(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

// existing returns path if it exists, otherwise "".
func existing(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

var visualElements = filepath.Join("browser", "VisualElements", "VisualElements_150.png")
