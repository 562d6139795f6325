//go:build linux

package process_linux

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"procmem/process"
)

// Protection bits reported for Linux regions, mapped onto the PAGE_*
// convention the Region type uses.
const (
	pageNoAccess         uint32 = 0x01
	pageReadonly         uint32 = 0x02
	pageReadWrite        uint32 = 0x04
	pageExecuteRead      uint32 = 0x20
	pageExecuteReadWrite uint32 = 0x40
)

// Regions parses /proc/<pid>/maps. Every listed range is committed; the
// type is derived from the backing path (file-backed executable mappings
// report as image, other file mappings as mapped, the rest as private).
func (h *linuxHandle) Regions() ([]process.Region, error) {
	if h.closed {
		return nil, process.ErrNotAttached
	}

	file, err := os.Open(fmt.Sprintf("/proc/%d/maps", h.pid))
	if err != nil {
		return nil, fmt.Errorf("read maps for pid %d: %w", h.pid, err)
	}
	defer file.Close()

	var out []process.Region
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		addrRange := strings.Split(fields[0], "-")
		if len(addrRange) != 2 {
			continue
		}
		start, err := strconv.ParseUint(addrRange[0], 16, 64)
		if err != nil {
			continue
		}
		end, err := strconv.ParseUint(addrRange[1], 16, 64)
		if err != nil {
			continue
		}

		perms := fields[1]
		path := ""
		if len(fields) >= 6 {
			path = fields[5]
		}

		out = append(out, process.Region{
			Base:    process.Address(start),
			Size:    process.Size(end - start),
			State:   process.MemCommit,
			Type:    regionType(perms, path),
			Protect: protFromPerms(perms),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func regionType(perms, path string) uint32 {
	if strings.HasPrefix(path, "/") {
		if strings.Contains(perms, "x") {
			return process.MemImage
		}
		return process.MemMapped
	}
	return process.MemPrivate
}

func protFromPerms(perms string) uint32 {
	r := strings.Contains(perms[:1], "r")
	w := len(perms) > 1 && perms[1] == 'w'
	x := len(perms) > 2 && perms[2] == 'x'

	switch {
	case x && w:
		return pageExecuteReadWrite
	case x:
		return pageExecuteRead
	case w:
		return pageReadWrite
	case r:
		return pageReadonly
	default:
		return pageNoAccess
	}
}
