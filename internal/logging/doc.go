// Package logging provides structured logging for the plinks CLI using slog.
//
// Console output goes through a colorized [Handler] when stderr is a
// terminal; --log-file adds a JSON handler fanned out through
// [MultiHandler]. Loggers travel through command contexts with
// [NewContext] and [FromContext].
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
