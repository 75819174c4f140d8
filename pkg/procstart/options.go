package procstart

import "github.com/perfmark/procstart/pkg/log"

// Option configures optional behavior of a measurement.
type Option func(*options)

// options holds the optional configuration for a single measurement.
type options struct {
	logger   log.Logger
	procRoot string
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger:   defaultLogger,
		procRoot: "/proc",
	}
}

// defaultLogger is shared by all measurements that don't override it.
// Constructed once; immutable after package init.
var defaultLogger log.Logger = log.NewZerologAdapter()

// WithLogger sets a custom logger for failure diagnostics.
// If not provided, a zerolog console writer on stderr is used.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSilent suppresses failure diagnostics entirely. A failed measurement
// then returns 0.0 with no output, indistinguishable from a genuine
// zero-length measurement.
func WithSilent() Option {
	return func(o *options) {
		o.logger = log.NewNoopLogger()
	}
}

// WithProcRoot overrides the proc filesystem root used by the Linux strategy
// (default "/proc"). Useful for tests and containerized environments that
// mount proc elsewhere. Ignored on other platforms.
func WithProcRoot(root string) Option {
	return func(o *options) {
		if root != "" {
			o.procRoot = root
		}
	}
}
