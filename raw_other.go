//go:build !linux && !windows

package procmem

import (
	"errors"

	"procmem/process"
)

// NewRawAccess returns this platform's raw-access capability.
func NewRawAccess() process.RawAccess {
	return unsupported{}
}

type unsupported struct{}

func (unsupported) Open(process.ProcessID, process.AccessRights) (process.Handle, error) {
	return nil, errors.New("raw process access is not supported on this platform")
}
