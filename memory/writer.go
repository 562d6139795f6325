package memory

import (
	"fmt"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"

	"procmem/codec"
	"procmem/layout"
	"procmem/process"
)

// WriterRights is the access mask a Writer requests: raw writes plus the
// memory-operation and query rights the write path depends on.
const WriterRights = process.AccessVMWrite | process.AccessVMOperation | process.AccessQueryInfo

// Writer owns one write-capable handle to a target process. Write
// operations report success as a bool and log the cause on failure; a
// partial write is a failure, never partial success. A Writer is not safe
// for concurrent use.
type Writer struct {
	raw    process.RawAccess
	pid    process.ProcessID
	handle process.Handle
	log    *logger.Logger
}

// NewWriter creates an unattached Writer over the given raw capability.
func NewWriter(raw process.RawAccess) *Writer {
	return &Writer{
		raw: raw,
		log: logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "writer-not-attached")),
	}
}

// Attach acquires a write-capable handle to pid. On failure it logs the
// cause, leaves the Writer unattached and returns false.
func (w *Writer) Attach(pid process.ProcessID) bool {
	if w.handle != nil {
		w.Detach()
	}

	handle, err := w.raw.Open(pid, WriterRights)
	if err != nil {
		w.log.Warn("Attach failed: ", err)
		return false
	}

	w.pid = pid
	w.handle = handle
	w.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, fmt.Sprintf("writer-%d", pid)))
	w.log.Infoln("Attached")
	return true
}

// Attached reports whether the Writer currently holds a handle.
func (w *Writer) Attached() bool {
	return w.handle != nil
}

// PID returns the attached process id, zero when unattached.
func (w *Writer) PID() process.ProcessID {
	return w.pid
}

// Detach releases the handle exactly once. It closes only a valid handle;
// calling it on an unattached Writer is a no-op.
func (w *Writer) Detach() error {
	if w.handle == nil {
		return nil
	}

	err := w.handle.Close()
	w.handle = nil
	w.pid = 0
	w.log.Infoln("Detached")
	w.log = logger.NewLogger(coloransi.Color(coloransi.Red, coloransi.ColorOrange, "writer-not-attached"))
	return err
}

// WriteBytes writes data at addr and reports whether every byte landed.
func (w *Writer) WriteBytes(addr process.Address, data []byte) bool {
	if w.handle == nil {
		w.log.Warn("WriteBytes: ", process.ErrNotAttached)
		return false
	}

	n, err := w.handle.Write(addr, data)
	if err != nil {
		w.log.Warn(fmt.Sprintf("WriteBytes at %s: ", addr), err)
		return false
	}
	if n != len(data) {
		w.log.Warn(fmt.Sprintf("WriteBytes at %s: ", addr), fmt.Errorf("%w: %d of %d bytes", process.ErrPartialWrite, n, len(data)))
		return false
	}
	return true
}

func (w *Writer) WriteUint16(addr process.Address, v uint16) bool {
	return w.WriteBytes(addr, codec.FromUint16(v))
}

func (w *Writer) WriteInt16(addr process.Address, v int16) bool {
	return w.WriteBytes(addr, codec.FromInt16(v))
}

func (w *Writer) WriteUint32(addr process.Address, v uint32) bool {
	return w.WriteBytes(addr, codec.FromUint32(v))
}

func (w *Writer) WriteInt32(addr process.Address, v int32) bool {
	return w.WriteBytes(addr, codec.FromInt32(v))
}

func (w *Writer) WriteUint64(addr process.Address, v uint64) bool {
	return w.WriteBytes(addr, codec.FromUint64(v))
}

func (w *Writer) WriteInt64(addr process.Address, v int64) bool {
	return w.WriteBytes(addr, codec.FromInt64(v))
}

func (w *Writer) WriteFloat32(addr process.Address, v float32) bool {
	return w.WriteBytes(addr, codec.FromFloat32(v))
}

func (w *Writer) WriteFloat64(addr process.Address, v float64) bool {
	return w.WriteBytes(addr, codec.FromFloat64(v))
}

func (w *Writer) WriteUint128(addr process.Address, v codec.Uint128) bool {
	return w.WriteBytes(addr, codec.FromUint128(v))
}

func (w *Writer) WritePointer(addr process.Address, v process.Address) bool {
	return w.WriteBytes(addr, codec.FromUint64(uint64(v)))
}

// WriteAggregate encodes rec with the layout and writes the full buffer at
// addr. Padding bytes in the layout are written as zero.
func (w *Writer) WriteAggregate(addr process.Address, l layout.Layout, rec layout.Record) bool {
	buf, err := l.Encode(rec)
	if err != nil {
		w.log.Warn("WriteAggregate: ", err)
		return false
	}
	return w.WriteBytes(addr, buf)
}
