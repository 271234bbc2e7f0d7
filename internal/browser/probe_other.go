//go:build !windows

package browser

// DefaultVersionProbe is nil where no reliable version resource exists;
// every Firefox install classifies as the stable channel.
var DefaultVersionProbe VersionProbe
