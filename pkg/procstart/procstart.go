package procstart

// Measure returns the wall-clock seconds elapsed between OS process creation
// and the moment of the call.
//
// On failure it returns a non-nil error describing which OS query or decode
// step went wrong, after emitting one diagnostic through the configured
// logger. On platforms without a native strategy the error is ErrUnsupported.
func Measure(opts ...Option) (float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return elapsedSinceStart(&o)
}

// Elapsed returns the wall-clock seconds elapsed between OS process creation
// and the moment of the call, or exactly 0.0 on any failure.
//
// The 0.0 sentinel is ambiguous with a call made at the instant of creation;
// use Measure to distinguish the two.
func Elapsed(opts ...Option) float64 {
	secs, err := Measure(opts...)
	if err != nil {
		return 0.0
	}
	return secs
}
