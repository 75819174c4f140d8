package procstart

import "errors"

// ErrUnsupported is returned by Measure on platforms without a process
// start time strategy. Any new GOOS either gets a native strategy or
// explicitly accepts this fallback.
var ErrUnsupported = errors.New("process start time not supported on this platform")
