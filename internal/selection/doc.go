// Package selection runs the interactive choice of installation, profile
// and executable for a URI.
//
// [Engine.Run] is an explicit state machine:
//
//	SelectInstallation -> SelectProfile -> SelectExecutable -> Done
//	        ^                 |    ^             |
//	        +------ Back -----+    +---- Back ---+
//
// Cancelling any prompt moves to Cancelled. Choosing an executable
// memoizes it for the profile, so the next session offers it as
// "Last Used". A finished session becomes a [Descriptor] via [Assemble].
package selection
