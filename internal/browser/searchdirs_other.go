//go:build !windows

package browser

func platformSearchDirs() []string {
	return []string{
		"/usr/lib/firefox",
		"/usr/lib64/firefox",
		"/usr/lib/librewolf",
		"/opt/firefox",
	}
}
