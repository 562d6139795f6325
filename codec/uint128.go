package codec

import "fmt"

// Uint128 is a full-width 128-bit unsigned value. Decodes always carry all
// 16 bytes; narrowing to a smaller type is lossy and only available through
// the explicitly named Trunc32/Trunc64.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// IsZero reports whether all 128 bits are zero.
func (v Uint128) IsZero() bool {
	return v.Lo == 0 && v.Hi == 0
}

// Trunc64 discards the high 64 bits. Lossy whenever Hi != 0.
func (v Uint128) Trunc64() uint64 {
	return v.Lo
}

// Trunc32 discards the high 96 bits. Lossy whenever Hi != 0 or Lo overflows
// 32 bits.
func (v Uint128) Trunc32() uint32 {
	return uint32(v.Lo)
}

func (v Uint128) String() string {
	if v.Hi == 0 {
		return fmt.Sprintf("0x%X", v.Lo)
	}
	return fmt.Sprintf("0x%X%016X", v.Hi, v.Lo)
}

// ToUint128 decodes 16 little-endian bytes: the low quadword first, then
// the high quadword.
func ToUint128(buf []byte) (Uint128, error) {
	if err := checkWidth(buf, WidthUint128); err != nil {
		return Uint128{}, err
	}
	lo, _ := ToUint64(buf[:WidthUint64])
	hi, _ := ToUint64(buf[WidthUint64:WidthUint128])
	return Uint128{Lo: lo, Hi: hi}, nil
}

// FromUint128 encodes all 16 bytes, low quadword first.
func FromUint128(v Uint128) []byte {
	buf := make([]byte, 0, WidthUint128)
	buf = append(buf, FromUint64(v.Lo)...)
	buf = append(buf, FromUint64(v.Hi)...)
	return buf
}
