package memory

import (
	"fmt"

	"procmem/codec"
	"procmem/layout"
	"procmem/process"
)

// Blob is a fully-read byte range pinned to the target address it came
// from. Offsets are relative to that base, so struct fields decode with the
// same offsets used against live memory.
type Blob struct {
	base process.Address
	data []byte
}

func NewBlob(base process.Address, data []byte) *Blob {
	return &Blob{base: base, data: data}
}

// Base is the target address of the first byte.
func (b *Blob) Base() process.Address {
	return b.base
}

// Data returns the underlying bytes. The slice is owned by the Blob.
func (b *Blob) Data() []byte {
	return b.data
}

func (b *Blob) Len() int {
	return len(b.data)
}

func (b *Blob) bytesAt(offset process.Address, width int) ([]byte, error) {
	end := uint64(offset) + uint64(width)
	if end > uint64(len(b.data)) {
		return nil, fmt.Errorf("%w: offset %#x width %d exceeds blob of %d bytes",
			codec.ErrBufferTooSmall, uint64(offset), width, len(b.data))
	}
	return b.data[offset:end], nil
}

func (b *Blob) Uint16At(offset process.Address) (uint16, error) {
	data, err := b.bytesAt(offset, codec.WidthUint16)
	if err != nil {
		return 0, err
	}
	return codec.ToUint16(data)
}

func (b *Blob) Int16At(offset process.Address) (int16, error) {
	data, err := b.bytesAt(offset, codec.WidthInt16)
	if err != nil {
		return 0, err
	}
	return codec.ToInt16(data)
}

func (b *Blob) Uint32At(offset process.Address) (uint32, error) {
	data, err := b.bytesAt(offset, codec.WidthUint32)
	if err != nil {
		return 0, err
	}
	return codec.ToUint32(data)
}

func (b *Blob) Int32At(offset process.Address) (int32, error) {
	data, err := b.bytesAt(offset, codec.WidthInt32)
	if err != nil {
		return 0, err
	}
	return codec.ToInt32(data)
}

func (b *Blob) Uint64At(offset process.Address) (uint64, error) {
	data, err := b.bytesAt(offset, codec.WidthUint64)
	if err != nil {
		return 0, err
	}
	return codec.ToUint64(data)
}

func (b *Blob) Int64At(offset process.Address) (int64, error) {
	data, err := b.bytesAt(offset, codec.WidthInt64)
	if err != nil {
		return 0, err
	}
	return codec.ToInt64(data)
}

func (b *Blob) Float32At(offset process.Address) (float32, error) {
	data, err := b.bytesAt(offset, codec.WidthFloat32)
	if err != nil {
		return 0, err
	}
	return codec.ToFloat32(data)
}

func (b *Blob) Float64At(offset process.Address) (float64, error) {
	data, err := b.bytesAt(offset, codec.WidthFloat64)
	if err != nil {
		return 0, err
	}
	return codec.ToFloat64(data)
}

func (b *Blob) Uint128At(offset process.Address) (codec.Uint128, error) {
	data, err := b.bytesAt(offset, codec.WidthUint128)
	if err != nil {
		return codec.Uint128{}, err
	}
	return codec.ToUint128(data)
}

func (b *Blob) PointerAt(offset process.Address) (process.Address, error) {
	data, err := b.bytesAt(offset, int(process.PointerWidth))
	if err != nil {
		return 0, err
	}
	v, err := codec.ToUint64(data)
	return process.Address(v), err
}

// NTSAt reads a null-terminated string starting at offset, scanning at most
// maxLength bytes or to the end of the blob, whichever comes first.
func (b *Blob) NTSAt(offset process.Address, maxLength process.Size) (string, error) {
	if uint64(offset) >= uint64(len(b.data)) {
		return "", fmt.Errorf("%w: offset %#x exceeds blob of %d bytes", codec.ErrBufferTooSmall, uint64(offset), len(b.data))
	}
	data := b.data[offset:]
	if int(maxLength) < len(data) {
		data = data[:maxLength]
	}
	for i, c := range data {
		if c == 0 {
			return string(data[:i]), nil
		}
	}
	return string(data), nil
}

// BlobAt returns a sub-blob of size bytes starting at offset; its base is
// the corresponding target address.
func (b *Blob) BlobAt(offset process.Address, size process.Size) (*Blob, error) {
	data, err := b.bytesAt(offset, int(size))
	if err != nil {
		return nil, err
	}
	return NewBlob(b.base+offset, data), nil
}

// DecodeAs decodes the blob's bytes as the given aggregate layout.
func (b *Blob) DecodeAs(l layout.Layout) (layout.Record, error) {
	return l.Decode(b.data)
}
