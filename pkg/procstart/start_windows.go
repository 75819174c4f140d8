//go:build windows

package procstart

import (
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/perfmark/procstart/pkg/log"
)

// FILETIME values count 100-nanosecond ticks since the Windows epoch.
// GetProcessTimes and GetSystemTimeAsFileTime report in the same domain,
// so the two readings are directly subtractable.
const filetimeTicksPerSecond = 1e7

func elapsedSinceStart(o *options) (float64, error) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		o.logger.Error("failed to query process creation time", log.Err(err))
		return 0, fmt.Errorf("query process times: %w", err)
	}

	// The "now" query has no failure mode.
	var now windows.Filetime
	windows.GetSystemTimeAsFileTime(&now)

	start := float64(filetimeTicks(creation)) / filetimeTicksPerSecond
	current := float64(filetimeTicks(now)) / filetimeTicksPerSecond
	return current - start, nil
}

func filetimeTicks(ft windows.Filetime) uint64 {
	return uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
}
