//go:build windows

// Package process_windows provides the Windows raw-access capability over
// OpenProcess, ReadProcessMemory, WriteProcessMemory and VirtualQueryEx.
package process_windows

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"procmem/process"
)

// New returns the Windows process.RawAccess capability.
func New() process.RawAccess {
	return rawAccess{}
}

type rawAccess struct{}

func (rawAccess) Open(pid process.ProcessID, rights process.AccessRights) (process.Handle, error) {
	h, err := windows.OpenProcess(uint32(rights), false, uint32(pid))
	if err != nil {
		return nil, fmt.Errorf("OpenProcess pid %d rights %#x: %w", pid, uint32(rights), err)
	}
	return &winHandle{handle: h, pid: pid}, nil
}

type winHandle struct {
	handle windows.Handle
	pid    process.ProcessID
}

func (h *winHandle) Read(addr process.Address, size process.Size) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	if h.handle == 0 {
		return nil, process.ErrNotAttached
	}

	buf := make([]byte, size)
	var n uintptr
	err := windows.ReadProcessMemory(h.handle, uintptr(addr), &buf[0], uintptr(size), &n)
	if err != nil {
		if n == 0 {
			return nil, fmt.Errorf("ReadProcessMemory at %s: %w", addr, err)
		}
		// Partial transfer: the tail of the range was not readable. Hand
		// back exactly what arrived, never zero-padded to size.
		return buf[:n], nil
	}
	return buf[:n], nil
}

func (h *winHandle) Write(addr process.Address, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if h.handle == 0 {
		return 0, process.ErrNotAttached
	}

	var n uintptr
	err := windows.WriteProcessMemory(h.handle, uintptr(addr), &data[0], uintptr(len(data)), &n)
	if err != nil && n == 0 {
		return 0, fmt.Errorf("WriteProcessMemory at %s: %w", addr, err)
	}
	return int(n), nil
}

// Regions walks the target address space with VirtualQueryEx and reports
// every non-free region.
func (h *winHandle) Regions() ([]process.Region, error) {
	if h.handle == 0 {
		return nil, process.ErrNotAttached
	}

	var out []process.Region
	var mbi windows.MemoryBasicInformation
	var addr uintptr

	for {
		err := windows.VirtualQueryEx(h.handle, addr, &mbi, unsafe.Sizeof(mbi))
		if err != nil {
			break // end of address space
		}

		if mbi.State != process.MemFree {
			out = append(out, process.Region{
				Base:    process.Address(mbi.BaseAddress),
				Size:    process.Size(mbi.RegionSize),
				State:   mbi.State,
				Type:    mbi.Type,
				Protect: mbi.Protect,
			})
		}

		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			break // overflow protection
		}
		addr = next
	}

	return out, nil
}

func (h *winHandle) Close() error {
	if h.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(h.handle)
	h.handle = 0
	if err != nil {
		return fmt.Errorf("CloseHandle pid %d: %w", h.pid, err)
	}
	return nil
}
