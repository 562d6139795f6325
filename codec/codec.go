// Package codec converts raw little-endian byte ranges to and from
// fixed-width scalar values. All functions are pure and stateless.
//
// Decoders require len(buf) >= the type's width and read exactly the first
// width bytes, ignoring any trailing bytes. Encoders produce exactly width
// bytes. Nothing here zero-pads a short buffer into a value.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Byte widths of the supported scalar types.
const (
	WidthUint16  = 2
	WidthInt16   = 2
	WidthUint32  = 4
	WidthInt32   = 4
	WidthFloat32 = 4
	WidthUint64  = 8
	WidthInt64   = 8
	WidthFloat64 = 8
	WidthUint128 = 16
)

// ErrBufferTooSmall is returned by every decoder handed a buffer shorter
// than the type's width. Reaching it means a short read was not handled
// upstream.
var ErrBufferTooSmall = errors.New("buffer too small")

func checkWidth(buf []byte, width int) error {
	if len(buf) < width {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, width, len(buf))
	}
	return nil
}

func ToUint16(buf []byte) (uint16, error) {
	if err := checkWidth(buf, WidthUint16); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

func ToInt16(buf []byte) (int16, error) {
	v, err := ToUint16(buf)
	return int16(v), err
}

func ToUint32(buf []byte) (uint32, error) {
	if err := checkWidth(buf, WidthUint32); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func ToInt32(buf []byte) (int32, error) {
	v, err := ToUint32(buf)
	return int32(v), err
}

func ToUint64(buf []byte) (uint64, error) {
	if err := checkWidth(buf, WidthUint64); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

func ToInt64(buf []byte) (int64, error) {
	v, err := ToUint64(buf)
	return int64(v), err
}

func ToFloat32(buf []byte) (float32, error) {
	v, err := ToUint32(buf)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func ToFloat64(buf []byte) (float64, error) {
	v, err := ToUint64(buf)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

func FromUint16(v uint16) []byte {
	buf := make([]byte, WidthUint16)
	binary.LittleEndian.PutUint16(buf, v)
	return buf
}

func FromInt16(v int16) []byte {
	return FromUint16(uint16(v))
}

func FromUint32(v uint32) []byte {
	buf := make([]byte, WidthUint32)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

func FromInt32(v int32) []byte {
	return FromUint32(uint32(v))
}

func FromUint64(v uint64) []byte {
	buf := make([]byte, WidthUint64)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func FromInt64(v int64) []byte {
	return FromUint64(uint64(v))
}

func FromFloat32(v float32) []byte {
	return FromUint32(math.Float32bits(v))
}

func FromFloat64(v float64) []byte {
	return FromUint64(math.Float64bits(v))
}
