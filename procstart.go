// Package procstart reports the wall-clock time elapsed since the operating
// system created the current process.
//
// Example usage:
//
//	func main() {
//	    startup := procstart.Elapsed()
//	    fmt.Printf("startup time: %.6fs\n", startup)
//	    ...
//	}
//
// This package re-exports the library under pkg/procstart for convenience;
// see that package for the full documentation, including the 0.0 failure
// sentinel contract and platform notes.
package procstart

import (
	"github.com/perfmark/procstart/pkg/log"
	"github.com/perfmark/procstart/pkg/procstart"
)

// Option configures optional behavior of a measurement.
type Option = procstart.Option

// ErrUnsupported is returned by Measure on platforms without a process
// start time strategy.
var ErrUnsupported = procstart.ErrUnsupported

// Elapsed returns the seconds elapsed since OS process creation, or exactly
// 0.0 on any failure. Call it as the first line of main().
func Elapsed(opts ...Option) float64 {
	return procstart.Elapsed(opts...)
}

// Measure returns the seconds elapsed since OS process creation, reporting
// failure as an error instead of the 0.0 sentinel.
func Measure(opts ...Option) (float64, error) {
	return procstart.Measure(opts...)
}

// WithLogger sets a custom logger for failure diagnostics.
func WithLogger(logger log.Logger) Option {
	return procstart.WithLogger(logger)
}

// WithSilent suppresses failure diagnostics entirely.
func WithSilent() Option {
	return procstart.WithSilent()
}
