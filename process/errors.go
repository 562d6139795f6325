package process

import "errors"

var (
	// ErrNotAttached is returned when a read or write is attempted on a
	// Reader or Writer that has no open handle, either because Attach
	// failed or Detach already ran.
	ErrNotAttached = errors.New("not attached to a process")

	// ErrShortRead is returned when the raw layer transferred fewer bytes
	// than the requested type width. The partial bytes are never padded
	// and decoded into a value.
	ErrShortRead = errors.New("short read")

	// ErrPartialWrite is returned when the raw layer wrote fewer bytes
	// than requested; a partial write is a failure, not partial success.
	ErrPartialWrite = errors.New("partial write")

	// ErrChainResolution is returned when an intermediate step of a
	// pointer-chain walk read a short, failed or invalid pointer.
	ErrChainResolution = errors.New("pointer chain resolution failed")

	// ErrBadAddress is returned by ParseAddress for empty or non-hex input.
	ErrBadAddress = errors.New("malformed address")
)
