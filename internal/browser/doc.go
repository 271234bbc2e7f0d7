// Package browser discovers browser installations and their profiles.
//
// A [Kind] describes one supported browser: the fixed Firefox channels,
// Firefox Portable, LibreWolf, LibreWolf Portable, and user-defined
// [Custom] kinds. Each kind knows its executable filename, its icon, how
// to enumerate profiles for an installation directory, and how to build
// the launch arguments for a profile and URI.
//
// [DetectType] classifies a directory by its executable, [NewInstallation]
// turns a directory into an [Installation] with a profile snapshot, and
// [Discover] does so for many directories, skipping the ones that fail.
//
// Profiles come from a family's profiles.ini, read with [ParseRegistry]:
//
//	[Profile0]
//	Name=default-release
//	IsRelative=1
//	Path=Profiles/abcd1234.default-release
package browser
