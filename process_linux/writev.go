//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"procmem/process"
)

// Write copies data into the target with process_vm_writev and returns the
// number of bytes the kernel actually moved.
func (h *linuxHandle) Write(addr process.Address, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if h.closed {
		return 0, process.ErrNotAttached
	}

	localIov := unix.Iovec{
		Base: &data[0],
		Len:  uint64(len(data)),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(addr),
		Len:  len(data),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(h.pid),
		uintptr(unsafe.Pointer(&localIov)),
		1,
		uintptr(unsafe.Pointer(&remoteIov)),
		1,
		0,
	)
	if errno != 0 {
		return 0, fmt.Errorf("process_vm_writev pid %d at %s: %w", h.pid, addr, errno)
	}

	return int(n), nil
}
