package process

// RawAccess is the OS capability that opens handles to other processes.
// Platform packages provide the real implementations; tests substitute
// in-memory fakes.
type RawAccess interface {
	// Open acquires a handle to pid with the requested rights. It fails if
	// the process does not exist, has exited, or the caller lacks the OS
	// privilege for those rights.
	Open(pid ProcessID, rights AccessRights) (Handle, error)
}

// Handle is an open capability to one target process. A Handle is owned by
// exactly one Reader or Writer and must be closed exactly once; using it
// after Close is a contract violation upstream and is prevented by the
// owning component.
type Handle interface {
	// Read copies up to size bytes starting at addr out of the target.
	// A short slice with a nil error means the tail of the range was not
	// readable; a non-nil error means the transfer failed outright. The
	// result is never silently zero-padded to size.
	Read(addr Address, size Size) ([]byte, error)

	// Write copies data into the target starting at addr and returns the
	// number of bytes actually transferred.
	Write(addr Address, data []byte) (int, error)

	// Regions reports the currently mapped regions of the target, where
	// the platform supports querying them.
	Regions() ([]Region, error)

	// Close releases the handle. Callers must not call it twice.
	Close() error
}
