// Package memory provides typed read and write access to an attached target
// process. Reader and Writer are explicit instances created around a
// process.RawAccess capability; each owns at most one handle and releases it
// exactly once.
package memory

import (
	"fmt"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"procmem/codec"
	"procmem/layout"
	"procmem/process"
)

// ReaderRights is the access mask a Reader requests: enough for raw reads
// and region queries, nothing more.
const ReaderRights = process.AccessVMRead | process.AccessQueryInfo

// Reader owns one read-capable handle to a target process and decodes
// typed values out of its memory. A Reader is not safe for concurrent use;
// callers sharing one across goroutines must synchronize externally.
type Reader struct {
	raw    process.RawAccess
	pid    process.ProcessID
	handle process.Handle
	log    *logger.Logger
}

// NewReader creates an unattached Reader over the given raw capability.
func NewReader(raw process.RawAccess) *Reader {
	return &Reader{
		raw: raw,
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "reader-not-attached")),
	}
}

// Attach acquires a read+query handle to pid. On failure it logs the cause,
// leaves the Reader unattached and returns false. Attaching while already
// attached releases the previous handle first.
func (r *Reader) Attach(pid process.ProcessID) bool {
	if r.handle != nil {
		r.Detach()
	}

	handle, err := r.raw.Open(pid, ReaderRights)
	if err != nil {
		r.log.Warn("Attach failed: ", err)
		return false
	}

	r.pid = pid
	r.handle = handle
	r.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("reader-%d", pid)))
	r.log.Infoln("Attached")
	return true
}

// Attached reports whether the Reader currently holds a handle.
func (r *Reader) Attached() bool {
	return r.handle != nil
}

// PID returns the attached process id, zero when unattached.
func (r *Reader) PID() process.ProcessID {
	return r.pid
}

// Detach releases the handle exactly once. Calling it on an unattached
// Reader is a no-op.
func (r *Reader) Detach() error {
	if r.handle == nil {
		return nil
	}

	err := r.handle.Close()
	r.handle = nil
	r.pid = 0
	r.log.Infoln("Detached")
	r.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "reader-not-attached"))
	return err
}

// ReadBytes reads up to size bytes at addr. It returns exactly what the raw
// layer transferred: a short slice means the tail of the range was not
// readable. The typed readers are the place where short reads become errors.
func (r *Reader) ReadBytes(addr process.Address, size process.Size) ([]byte, error) {
	if r.handle == nil {
		return nil, process.ErrNotAttached
	}
	return r.handle.Read(addr, size)
}

// readExact reads width bytes at addr and fails on anything less.
func (r *Reader) readExact(addr process.Address, width int) ([]byte, error) {
	data, err := r.ReadBytes(addr, process.Size(width))
	if err != nil {
		return nil, err
	}
	if len(data) < width {
		return nil, fmt.Errorf("%w: %d of %d bytes at %s", process.ErrShortRead, len(data), width, addr)
	}
	return data, nil
}

func (r *Reader) ReadUint16(addr process.Address) (uint16, error) {
	data, err := r.readExact(addr, codec.WidthUint16)
	if err != nil {
		return 0, err
	}
	return codec.ToUint16(data)
}

func (r *Reader) ReadInt16(addr process.Address) (int16, error) {
	data, err := r.readExact(addr, codec.WidthInt16)
	if err != nil {
		return 0, err
	}
	return codec.ToInt16(data)
}

func (r *Reader) ReadUint32(addr process.Address) (uint32, error) {
	data, err := r.readExact(addr, codec.WidthUint32)
	if err != nil {
		return 0, err
	}
	return codec.ToUint32(data)
}

func (r *Reader) ReadInt32(addr process.Address) (int32, error) {
	data, err := r.readExact(addr, codec.WidthInt32)
	if err != nil {
		return 0, err
	}
	return codec.ToInt32(data)
}

func (r *Reader) ReadUint64(addr process.Address) (uint64, error) {
	data, err := r.readExact(addr, codec.WidthUint64)
	if err != nil {
		return 0, err
	}
	return codec.ToUint64(data)
}

func (r *Reader) ReadInt64(addr process.Address) (int64, error) {
	data, err := r.readExact(addr, codec.WidthInt64)
	if err != nil {
		return 0, err
	}
	return codec.ToInt64(data)
}

func (r *Reader) ReadFloat32(addr process.Address) (float32, error) {
	data, err := r.readExact(addr, codec.WidthFloat32)
	if err != nil {
		return 0, err
	}
	return codec.ToFloat32(data)
}

func (r *Reader) ReadFloat64(addr process.Address) (float64, error) {
	data, err := r.readExact(addr, codec.WidthFloat64)
	if err != nil {
		return 0, err
	}
	return codec.ToFloat64(data)
}

// ReadUint128 returns the full 16-byte value. Narrow it only through the
// explicitly lossy codec.Uint128 truncations.
func (r *Reader) ReadUint128(addr process.Address) (codec.Uint128, error) {
	data, err := r.readExact(addr, codec.WidthUint128)
	if err != nil {
		return codec.Uint128{}, err
	}
	return codec.ToUint128(data)
}

// ReadPointer reads a pointer-width value at addr as an address in the
// target's space.
func (r *Reader) ReadPointer(addr process.Address) (process.Address, error) {
	data, err := r.readExact(addr, int(process.PointerWidth))
	if err != nil {
		return 0, err
	}
	v, err := codec.ToUint64(data)
	return process.Address(v), err
}

// ReadPointers reads count consecutive pointer-width values starting at base.
func (r *Reader) ReadPointers(base process.Address, count int) ([]process.Address, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid pointer count %d", count)
	}
	data, err := r.readExact(base, count*int(process.PointerWidth))
	if err != nil {
		return nil, err
	}
	out := make([]process.Address, count)
	for i := range out {
		v, _ := codec.ToUint64(data[i*int(process.PointerWidth):])
		out[i] = process.Address(v)
	}
	return out, nil
}

// ReadNTS reads a null-terminated string at addr, scanning at most
// maxLength bytes. A short read truncates the scan rather than failing:
// the string may end right at an unmapped boundary.
func (r *Reader) ReadNTS(addr process.Address, maxLength process.Size) (string, error) {
	if maxLength == 0 {
		return "", nil
	}
	data, err := r.ReadBytes(addr, maxLength)
	if err != nil {
		return "", err
	}
	for i, b := range data {
		if b == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}

// ReadAggregate reads the layout's full width at addr and decodes it field
// by field.
func (r *Reader) ReadAggregate(addr process.Address, l layout.Layout) (layout.Record, error) {
	data, err := r.readExact(addr, l.Width())
	if err != nil {
		return nil, err
	}
	return l.Decode(data)
}

// ReadBlob reads size bytes at addr into a Blob for offset-addressed
// decoding. Unlike ReadBytes, a short read is an error here: a Blob always
// covers its full declared range.
func (r *Reader) ReadBlob(addr process.Address, size process.Size) (*Blob, error) {
	data, err := r.readExact(addr, int(size))
	if err != nil {
		return nil, err
	}
	return NewBlob(addr, data[:size]), nil
}

// Regions reports the target's mapped regions, where the platform supports
// querying them.
func (r *Reader) Regions() ([]process.Region, error) {
	if r.handle == nil {
		return nil, process.ErrNotAttached
	}
	return r.handle.Regions()
}
