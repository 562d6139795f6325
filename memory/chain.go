package memory

import (
	"fmt"

	"procmem/codec"
	"procmem/hexdump"
	"procmem/process"
)

// ResolvePointerChain walks a dereference chain from base and returns the
// final address; the caller performs the last typed read there.
//
// Each hop reads a pointer-width value at current plus the zero-based hop
// index and advances to that value plus the same index. The offsets slice
// supplies the hop count. This step-index displacement matches the chain
// convention of the target layouts this engine was built against; it is not
// a general pointer-chain rule, so confirm it fits a new target before
// relying on it. ReadPointerChain implements the conventional walk.
//
// Intermediate reads are not validated against mapped regions; a short or
// failed hop read surfaces as process.ErrChainResolution rather than a
// pointer decoded from partial bytes.
func (r *Reader) ResolvePointerChain(base process.Address, offsets []process.Size) (process.Address, error) {
	current := base
	for i := range offsets {
		step := process.Address(i)
		data, err := r.ReadBytes(current+step, process.PointerWidth)
		if err != nil {
			return 0, fmt.Errorf("%w: hop %d at %s: %w", process.ErrChainResolution, i, (current + step), err)
		}
		if len(data) < int(process.PointerWidth) {
			return 0, fmt.Errorf("%w: hop %d at %s: %w (%d of %d bytes)",
				process.ErrChainResolution, i, (current + step), process.ErrShortRead, len(data), process.PointerWidth)
		}
		v, err := codec.ToUint64(data)
		if err != nil {
			return 0, fmt.Errorf("%w: hop %d at %s: %w", process.ErrChainResolution, i, (current + step), err)
		}
		current = process.Address(v) + step
	}
	return current, nil
}

// ReadPointerChain walks pointer fields at all offsets except the last,
// which is a raw byte offset into the final struct, then reads size bytes
// starting there.
//
//	// base -> [ +0 ]ptrA -> [ +24 ]ptrB -> [ +144 ]ptrC
//	// final read at (ptrC + 504), length 0x10
//	blob, err := r.ReadPointerChain(base, 0x10, 0, 24, 144, 504)
func (r *Reader) ReadPointerChain(base process.Address, size process.Size, offsets ...process.Size) (*Blob, error) {
	if len(offsets) == 0 {
		return r.ReadBlob(base, size)
	}

	current := base
	for i := 0; i < len(offsets)-1; i++ {
		addr := current + process.Address(offsets[i])
		ptr, err := r.ReadPointer(addr)
		if err != nil {
			return nil, fmt.Errorf("%w: hop %d at %s: %w", process.ErrChainResolution, i, addr, err)
		}
		if ptr == 0 {
			return nil, fmt.Errorf("%w: NULL pointer at hop %d (%s + %#x)", process.ErrChainResolution, i, current, uint64(offsets[i]))
		}
		current = ptr
	}

	start := current + process.Address(offsets[len(offsets)-1])
	blob, err := r.ReadBlob(start, size)
	if err != nil {
		return nil, fmt.Errorf("%w: final read at %s (size %s): %w", process.ErrChainResolution, start, size, err)
	}
	return blob, nil
}

// ReadPointerChainDebug does the same as ReadPointerChain but logs the hop
// trace and hexdumps the final blob.
func (r *Reader) ReadPointerChainDebug(base process.Address, size process.Size, offsets ...process.Size) (*Blob, error) {
	if len(offsets) == 0 {
		r.log.Debugln(fmt.Sprintf("[chain] base=%s read size=%s", base, size))
		return r.ReadBlob(base, size)
	}

	current := base
	r.log.Debugln(fmt.Sprintf("[chain] base=%s", current))

	for i := 0; i < len(offsets)-1; i++ {
		addr := current + process.Address(offsets[i])
		ptr, err := r.ReadPointer(addr)
		if err != nil {
			return nil, fmt.Errorf("%w: hop %d at %s: %w", process.ErrChainResolution, i, addr, err)
		}
		r.log.Debugln(fmt.Sprintf("[chain] hop %d: *(%s + %#x) => %s", i, current, uint64(offsets[i]), ptr))
		if ptr == 0 {
			return nil, fmt.Errorf("%w: NULL pointer at hop %d", process.ErrChainResolution, i)
		}
		current = ptr
	}

	start := current + process.Address(offsets[len(offsets)-1])
	r.log.Debugln(fmt.Sprintf("[chain] final: read size=%s at %s", size, start))

	blob, err := r.ReadBlob(start, size)
	if err != nil {
		return nil, fmt.Errorf("%w: final read at %s: %w", process.ErrChainResolution, start, err)
	}

	r.log.Debugln("\n" + hexdump.Dump(blob.Data(), uint64(start)))
	return blob, nil
}
