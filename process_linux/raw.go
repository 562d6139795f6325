//go:build linux

// Package process_linux provides the Linux raw-access capability over the
// process_vm_readv and process_vm_writev syscalls. There is no OS handle
// object on this platform; the capability is the pid plus ptrace
// permission, checked lazily by the kernel on each transfer.
package process_linux

import (
	"fmt"
	"os"

	"procmem/process"
)

// New returns the Linux process.RawAccess capability.
func New() process.RawAccess {
	return rawAccess{}
}

type rawAccess struct{}

func (rawAccess) Open(pid process.ProcessID, rights process.AccessRights) (process.Handle, error) {
	if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err != nil {
		return nil, fmt.Errorf("process %d does not exist: %w", pid, err)
	}
	return &linuxHandle{pid: pid, rights: rights}, nil
}

type linuxHandle struct {
	pid    process.ProcessID
	rights process.AccessRights
	closed bool
}

func (h *linuxHandle) Close() error {
	// Nothing OS-level to release; the closed flag keeps the
	// release-exactly-once discipline observable.
	h.closed = true
	return nil
}
