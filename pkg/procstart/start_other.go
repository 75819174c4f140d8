//go:build !windows && !linux && !darwin

package procstart

import (
	"runtime"

	"github.com/perfmark/procstart/pkg/log"
)

func elapsedSinceStart(o *options) (float64, error) {
	o.logger.Error("process start time not supported", log.String("goos", runtime.GOOS))
	return 0, ErrUnsupported
}
