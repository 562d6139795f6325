//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"procmem/process"
)

// Read copies up to size bytes out of the target with process_vm_readv.
// A transfer that stops at an unmapped boundary returns the bytes that
// arrived; a transfer the kernel rejects outright returns an error.
func (h *linuxHandle) Read(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	if h.closed {
		return nil, process.ErrNotAttached
	}

	buf := make([]byte, size)

	localIov := unix.Iovec{
		Base: &buf[0],
		Len:  uint64(size),
	}
	remoteIov := unix.RemoteIovec{
		Base: uintptr(addr),
		Len:  int(size),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_READV,
		uintptr(h.pid),
		uintptr(unsafe.Pointer(&localIov)),
		1,
		uintptr(unsafe.Pointer(&remoteIov)),
		1,
		0,
	)
	if errno != 0 {
		return nil, fmt.Errorf("process_vm_readv pid %d at %s: %w", h.pid, addr, errno)
	}

	return buf[:n], nil
}
