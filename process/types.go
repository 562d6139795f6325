// Package process defines the vocabulary shared by the memory engine:
// process identifiers, addresses, access rights, the raw-access capability
// contract, and the error values every layer reports through.
package process

import "fmt"

// ProcessID identifies a running process on the local machine.
type ProcessID int

func (pid ProcessID) String() string {
	return fmt.Sprintf("pid-%d", int(pid))
}
