//go:build linux

package procmem

import (
	"procmem/process"
	"procmem/process_linux"
)

// NewRawAccess returns this platform's raw-access capability.
func NewRawAccess() process.RawAccess {
	return process_linux.New()
}
