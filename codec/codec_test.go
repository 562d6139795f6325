package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		for _, v := range []uint16{0, 1, 0x7FFF, 0x8000, 0xFFFF} {
			got, err := ToUint16(FromUint16(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("int16", func(t *testing.T) {
		for _, v := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
			got, err := ToInt16(FromInt16(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("uint32", func(t *testing.T) {
		for _, v := range []uint32{0, 0xDEADBEEF, math.MaxUint32} {
			got, err := ToUint32(FromUint32(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("int32", func(t *testing.T) {
		for _, v := range []int32{math.MinInt32, -42, 0, math.MaxInt32} {
			got, err := ToInt32(FromInt32(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("uint64", func(t *testing.T) {
		for _, v := range []uint64{0, 0x0123456789ABCDEF, math.MaxUint64} {
			got, err := ToUint64(FromUint64(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("int64", func(t *testing.T) {
		for _, v := range []int64{math.MinInt64, -1, 0, math.MaxInt64} {
			got, err := ToInt64(FromInt64(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("float32", func(t *testing.T) {
		for _, v := range []float32{0, -1.5, math.MaxFloat32, math.SmallestNonzeroFloat32} {
			got, err := ToFloat32(FromFloat32(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("float64", func(t *testing.T) {
		for _, v := range []float64{0, 3.14159265358979, -math.MaxFloat64} {
			got, err := ToFloat64(FromFloat64(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
	t.Run("uint128", func(t *testing.T) {
		for _, v := range []Uint128{{}, {Lo: 1}, {Hi: 1}, {Lo: math.MaxUint64, Hi: math.MaxUint64}} {
			got, err := ToUint128(FromUint128(v))
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
}

func TestFloatNaNRoundTrip(t *testing.T) {
	// NaN payloads must survive the trip bit for bit.
	bits := uint64(0x7FF8000000000001)
	got, err := ToFloat64(FromUint64(bits))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got))
	assert.Equal(t, bits, math.Float64bits(got))
}

func TestDecodeWidthEnforcement(t *testing.T) {
	tests := []struct {
		name  string
		width int
		dec   func([]byte) error
	}{
		{"uint16", WidthUint16, func(b []byte) error { _, err := ToUint16(b); return err }},
		{"int16", WidthInt16, func(b []byte) error { _, err := ToInt16(b); return err }},
		{"uint32", WidthUint32, func(b []byte) error { _, err := ToUint32(b); return err }},
		{"int32", WidthInt32, func(b []byte) error { _, err := ToInt32(b); return err }},
		{"uint64", WidthUint64, func(b []byte) error { _, err := ToUint64(b); return err }},
		{"int64", WidthInt64, func(b []byte) error { _, err := ToInt64(b); return err }},
		{"float32", WidthFloat32, func(b []byte) error { _, err := ToFloat32(b); return err }},
		{"float64", WidthFloat64, func(b []byte) error { _, err := ToFloat64(b); return err }},
		{"uint128", WidthUint128, func(b []byte) error { _, err := ToUint128(b); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One byte short must always fail, as must nil and empty.
			assert.ErrorIs(t, tt.dec(make([]byte, tt.width-1)), ErrBufferTooSmall)
			assert.ErrorIs(t, tt.dec(nil), ErrBufferTooSmall)
			assert.ErrorIs(t, tt.dec([]byte{}), ErrBufferTooSmall)
			// Exact width and oversized both succeed; trailing bytes ignored.
			assert.NoError(t, tt.dec(make([]byte, tt.width)))
			assert.NoError(t, tt.dec(make([]byte, tt.width+7)))
		})
	}
}

func TestTrailingBytesIgnored(t *testing.T) {
	buf := append(FromUint32(0xAABBCCDD), 0xFF, 0xFF, 0xFF, 0xFF)
	got, err := ToUint32(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xAABBCCDD), got)
}

func TestLittleEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, FromUint32(0x12345678))
	assert.Equal(t, []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}, FromUint64(0x0123456789ABCDEF))
}

func TestUint128Truncation(t *testing.T) {
	v := Uint128{Lo: 0x1122334455667788, Hi: 0x99AABBCCDDEEFF00}
	assert.Equal(t, uint64(0x1122334455667788), v.Trunc64())
	assert.Equal(t, uint32(0x55667788), v.Trunc32())
	assert.False(t, v.IsZero())
	assert.True(t, Uint128{}.IsZero())
}
