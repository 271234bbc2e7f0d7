//go:build windows

package browser

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// Uninstall metadata written by the Mozilla and LibreWolf installers.
var installKeys = []string{
	`SOFTWARE\Mozilla\Mozilla Firefox`,
	`SOFTWARE\Mozilla\Firefox Nightly`,
	`SOFTWARE\Mozilla\Firefox Developer Edition`,
	`SOFTWARE\LibreWolf`,
}

func platformSearchDirs() []string {
	var dirs []string
	for _, key := range installKeys {
		if dir := registryInstallDir(key); dir != "" {
			dirs = append(dirs, dir)
		}
	}

	for _, env := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
		root := os.Getenv(env)
		if root == "" {
			continue
		}
		dirs = append(dirs,
			filepath.Join(root, "Mozilla Firefox"),
			filepath.Join(root, "Firefox Nightly"),
			filepath.Join(root, "Firefox Developer Edition"),
			filepath.Join(root, "LibreWolf"),
		)
	}
	return dirs
}

// registryInstallDir reads <key>\<CurrentVersion>\Main "Install Directory".
func registryInstallDir(key string) string {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	version, _, err := k.GetStringValue("CurrentVersion")
	k.Close()
	if err != nil || version == "" {
		return ""
	}

	main, err := registry.OpenKey(registry.LOCAL_MACHINE, key+`\`+version+`\Main`, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer main.Close()

	dir, _, err := main.GetStringValue("Install Directory")
	if err != nil {
		return ""
	}
	return dir
}
