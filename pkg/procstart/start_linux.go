//go:build linux

package procstart

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tklauser/go-sysconf"

	"github.com/perfmark/procstart/pkg/log"
)

// statStartTimeField is the position of the process start time in
// /proc/<pid>/stat, counting from 1 as proc_pid_stat(5) does. The value is
// in clock ticks since kernel boot.
const statStartTimeField = 22

func elapsedSinceStart(o *options) (float64, error) {
	statPath := filepath.Join(o.procRoot, "self", "stat")
	raw, err := os.ReadFile(statPath)
	if err != nil {
		o.logger.Error("failed to open process stat file", log.String("path", statPath), log.Err(err))
		return 0, fmt.Errorf("read %s: %w", statPath, err)
	}
	startTicks, err := parseStartTicks(raw)
	if err != nil {
		o.logger.Error("failed to decode process stat file", log.String("path", statPath), log.Err(err))
		return 0, fmt.Errorf("decode %s: %w", statPath, err)
	}

	// The tick rate is how often the kernel samples process accounting,
	// typically 100 Hz. It has nothing to do with the CPU clock, and it
	// caps this strategy's resolution at about 10ms.
	ticksPerSecond, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil {
		o.logger.Error("failed to query clock ticks per second", log.Err(err))
		return 0, fmt.Errorf("sysconf SC_CLK_TCK: %w", err)
	}
	startSeconds := float64(startTicks) / float64(ticksPerSecond)

	uptimePath := filepath.Join(o.procRoot, "uptime")
	raw, err = os.ReadFile(uptimePath)
	if err != nil {
		o.logger.Error("failed to open kernel uptime file", log.String("path", uptimePath), log.Err(err))
		return 0, fmt.Errorf("read %s: %w", uptimePath, err)
	}
	uptimeSeconds, err := parseUptimeSeconds(raw)
	if err != nil {
		o.logger.Error("failed to decode kernel uptime file", log.String("path", uptimePath), log.Err(err))
		return 0, fmt.Errorf("decode %s: %w", uptimePath, err)
	}

	// Both values are relative to kernel boot.
	return uptimeSeconds - startSeconds, nil
}

// parseStartTicks extracts the start-time field from a /proc/<pid>/stat
// record. Field 2 is the executable name in parentheses and may itself
// contain spaces and ')', so the remaining fields are counted from the last
// ')' in the record.
func parseStartTicks(raw []byte) (uint64, error) {
	s := string(raw)
	i := strings.LastIndexByte(s, ')')
	if i < 0 {
		return 0, fmt.Errorf("no comm field in stat record")
	}
	fields := strings.Fields(s[i+1:])
	idx := statStartTimeField - 3 // fields[0] is field 3 of the record
	if idx >= len(fields) {
		return 0, fmt.Errorf("stat record has %d fields after comm, need %d", len(fields), idx+1)
	}
	ticks, err := strconv.ParseUint(fields[idx], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("start time field %q: %w", fields[idx], err)
	}
	return ticks, nil
}

// parseUptimeSeconds parses the first field of /proc/uptime: kernel uptime
// in seconds, already fractional.
func parseUptimeSeconds(raw []byte) (float64, error) {
	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty uptime record")
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("uptime field %q: %w", fields[0], err)
	}
	return secs, nil
}
