//go:build darwin

package procstart

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/perfmark/procstart/pkg/log"
)

func elapsedSinceStart(o *options) (float64, error) {
	pid := os.Getpid()
	info, err := unix.SysctlKinfoProc("kern.proc.pid", pid)
	if err != nil {
		o.logger.Error("failed to query process info", log.Int("pid", pid), log.Err(err))
		return 0, fmt.Errorf("sysctl kern.proc.pid %d: %w", pid, err)
	}
	// P_starttime is a (seconds, microseconds) pair against the system
	// wall clock, the same domain gettimeofday reports in.
	start := info.Proc.P_starttime

	var now unix.Timeval
	if err := unix.Gettimeofday(&now); err != nil {
		o.logger.Error("failed to query wall clock", log.Err(err))
		return 0, fmt.Errorf("gettimeofday: %w", err)
	}

	return float64(now.Sec-start.Sec) + float64(now.Usec-start.Usec)/1e6, nil
}
