// Package procmem inspects and mutates the memory of a separate, running
// process. memory.Reader and memory.Writer do the typed work; this package
// supplies the platform raw-access capability so callers need no build tags.
package procmem
