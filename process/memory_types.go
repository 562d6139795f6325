package process

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a byte offset in the target process's virtual address space.
// It is not validated against the target's mapped regions here; the OS
// reports unmapped ranges at read/write time.
type Address uint64

func (a Address) String() string {
	return fmt.Sprintf("0x%X", uint64(a))
}

// Size is a byte count for a memory transfer.
type Size uint

func (s Size) String() string {
	return fmt.Sprintf("%d bytes", uint(s))
}

// PointerWidth is the width of a pointer in the target address space.
const PointerWidth = Size(8)

// ParseAddress parses a hexadecimal address with an optional 0x/0X prefix,
// case-insensitive. Empty or non-hex input is an error; a malformed string
// never silently becomes address zero.
func ParseAddress(s string) (Address, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if trimmed == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadAddress, s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAddress, s)
	}
	return Address(v), nil
}
