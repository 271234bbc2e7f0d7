// Package paths resolves the filesystem locations plinks reads and writes.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance
// of its own files and knows where each browser family keeps its
// profiles.ini registry file on each operating system.
//
// # Own Files
//
//	paths.ConfigFile()       // <ConfigHome>/plinks/config.yaml
//	paths.CacheFile(false)   // <ConfigHome>/plinks/cache.toml
//	paths.CacheFile(true)    // <exe dir>/config/cache.toml (portable)
//	paths.LastURLFile(cache) // last_url.txt beside the cache
//
// # Registry Files
//
//	| Family    | Windows                               | macOS                                        | Other                          |
//	|-----------|---------------------------------------|----------------------------------------------|--------------------------------|
//	| firefox   | %APPDATA%\Mozilla\Firefox\profiles.ini | ~/Library/Application Support/Firefox/...    | ~/.mozilla/firefox/profiles.ini |
//	| librewolf | %APPDATA%\librewolf\profiles.ini       | ~/Library/Application Support/librewolf/...  | ~/.librewolf/profiles.ini      |
//
// Unknown families resolve to the empty string.
package paths
