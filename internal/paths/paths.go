package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the config home.
const AppName = "plinks"

// Browser families that share one registry file.
const (
	FamilyFirefox   = "firefox"
	FamilyLibrewolf = "librewolf"
)

const (
	configFileName   = "config.yaml"
	cacheFileName    = "cache.toml"
	lastURLFileName  = "last_url.txt"
	backupDirName    = "backups"
	registryFileName = "profiles.ini"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories.
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" if it cannot be determined.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns <ConfigHome>/plinks.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default config file path.
func ConfigFile() string {
	return filepath.Join(AppConfigDir(), configFileName)
}

// CacheFile returns the installation cache path. In portable mode the cache
// lives in a config directory next to the running executable.
func CacheFile(portable bool) (string, error) {
	if !portable {
		return filepath.Join(AppConfigDir(), cacheFileName), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable for portable cache")
	}
	return filepath.Join(filepath.Dir(exe), "config", cacheFileName), nil
}

// LastURLFile returns the path of the last dispatched URI, stored beside the cache.
func LastURLFile(cacheFile string) string {
	return filepath.Join(filepath.Dir(cacheFile), lastURLFileName)
}

// BackupDir returns the directory holding snapshots, stored beside the cache.
func BackupDir(cacheFile string) string {
	return filepath.Join(filepath.Dir(cacheFile), backupDirName)
}

// Families returns the known browser families in a stable order.
func Families() []string {
	return []string{FamilyFirefox, FamilyLibrewolf}
}

// ValidFamily returns true if family is a known browser family.
func ValidFamily(family string) bool {
	for _, f := range Families() {
		if f == family {
			return true
		}
	}
	return false
}

// RegistryFile returns the profiles.ini path for a browser family on the
// current OS. Returns "" for unknown families or when no base directory
// can be determined.
func RegistryFile(family string) string {
	return registryFile(runtime.GOOS, Home(), os.Getenv("APPDATA"), family)
}

func registryFile(goos, home, appData, family string) string {
	if !ValidFamily(family) {
		return ""
	}

	switch goos {
	case "windows":
		if appData == "" {
			if home == "" {
				return ""
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		if family == FamilyFirefox {
			return filepath.Join(appData, "Mozilla", "Firefox", registryFileName)
		}
		return filepath.Join(appData, "librewolf", registryFileName)
	case "darwin":
		if home == "" {
			return ""
		}
		dir := "Firefox"
		if family == FamilyLibrewolf {
			dir = "librewolf"
		}
		return filepath.Join(home, "Library", "Application Support", dir, registryFileName)
	default:
		if home == "" {
			return ""
		}
		if family == FamilyFirefox {
			return filepath.Join(home, ".mozilla", "firefox", registryFileName)
		}
		return filepath.Join(home, ".librewolf", registryFileName)
	}
}
