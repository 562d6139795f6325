// Package pidof resolves a human-readable process name to a process id.
// It is used at attach time only; everything after attach works in pids.
package pidof

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gops "github.com/shirou/gopsutil/v3/process"

	"procmem/process"
)

// ErrNotFound is returned when no running process matches the name.
var ErrNotFound = errors.New("no process found")

// FindByName returns the pid of the first process whose name matches,
// case-insensitive. When several processes share the name the lowest pid
// wins, so repeated lookups are deterministic.
func FindByName(name string) (process.ProcessID, error) {
	pids, err := ListByName(name)
	if err != nil {
		return 0, err
	}
	if len(pids) == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return pids[0], nil
}

// ListByName returns every pid whose process name matches, lowest first.
func ListByName(name string) ([]process.ProcessID, error) {
	if name == "" {
		return nil, errors.New("empty process name")
	}

	procs, err := gops.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	var out []process.ProcessID
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // exited or not visible to us
		}
		if strings.EqualFold(pname, name) {
			out = append(out, process.ProcessID(p.Pid))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
