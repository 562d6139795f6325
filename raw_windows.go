//go:build windows

package procmem

import (
	"procmem/process"
	"procmem/process_windows"
)

// NewRawAccess returns this platform's raw-access capability.
func NewRawAccess() process.RawAccess {
	return process_windows.New()
}
