// Package procstart measures the wall-clock time elapsed since the operating
// system created the current process.
//
// Calling [Elapsed] at the first line of main() captures everything that
// happened before application code got control: OS process creation, loader
// activity, dynamic library loading, and package-level initialization. Add the
// result to measurements taken with your usual timers to report execution
// statistics from true process start rather than from main().
//
// Do not use this package as a general-purpose timer. The OS queries behind a
// measurement are slower than reading a monotonic clock, and some of the data
// sources update at coarse granularity (the Linux source advances in scheduler
// ticks, typically 100 Hz, so results there have roughly 10ms resolution).
// The intended pattern is one call, or a handful, near process start.
//
// # Usage
//
//	func main() {
//	    startup := procstart.Elapsed()
//	    fmt.Printf("startup time: %.6fs\n", startup)
//	    ...
//	}
//
// Elapsed returns exactly 0.0 when the measurement fails, which is
// indistinguishable from a call made at the very instant of creation. Callers
// that need to tell the two apart should use [Measure], which reports failure
// as an error.
//
// # Platforms
//
// Windows, Linux and macOS have native strategies; each pairs an OS-recorded
// process creation timestamp with a "now" reading from the same clock domain
// and subtracts. On any other GOOS, Measure returns [ErrUnsupported] and
// Elapsed returns 0.0.
//
// # Diagnostics
//
// Every failure path emits exactly one human-readable diagnostic through the
// configured logger, a zerolog console writer on stderr by default. Use
// [WithLogger] to redirect it or [WithSilent] to drop it.
//
// # Calibration
//
// To verify the measurement on a new platform, place a known delay in a
// package-level initializer and compare against a baseline run:
//
//	func init() {
//	    time.Sleep(2 * time.Second) // remove me
//	}
//
// The measured value should grow by about two seconds. The first run after
// recompiling tends to be slower due to caching and OS checks; repeat the run
// a few times.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package procstart
