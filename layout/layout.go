// Package layout packs and unpacks fixed-layout aggregate values. The shape
// of an aggregate is a caller-declared list of fields, each with an explicit
// byte offset and width inside the target's struct; nothing is inferred from
// Go's own struct layout, since the bytes belong to another process.
package layout

import (
	"fmt"

	"procmem/codec"
)

// Record holds decoded field values keyed by field name.
type Record map[string]any

// Field describes one member of an aggregate: where it lives in the buffer,
// how wide it is, and how its bytes map to a value.
type Field struct {
	Name   string
	Offset int
	Width  int
	Dec    func([]byte) (any, error)
	Enc    func(any) ([]byte, error)
}

// Layout is the declared shape of an aggregate. Fields may be listed in any
// order; packing is driven by each field's offset, not its position in the
// list.
type Layout []Field

// Width is the total byte span of the aggregate: the maximum of
// offset+width across all fields, not their sum. Bytes covered by no field
// are padding.
func (l Layout) Width() int {
	max := 0
	for _, f := range l {
		if end := f.Offset + f.Width; end > max {
			max = end
		}
	}
	return max
}

// Decode applies each field's decoder to its slice of buf. The buffer must
// cover the full layout width.
func (l Layout) Decode(buf []byte) (Record, error) {
	if len(buf) < l.Width() {
		return nil, fmt.Errorf("%w: layout needs %d bytes, have %d", codec.ErrBufferTooSmall, l.Width(), len(buf))
	}
	rec := make(Record, len(l))
	for _, f := range l {
		v, err := f.Dec(buf[f.Offset : f.Offset+f.Width])
		if err != nil {
			return nil, fmt.Errorf("decode field %q: %w", f.Name, err)
		}
		rec[f.Name] = v
	}
	return rec, nil
}

// Encode serializes rec into a buffer of exactly Width bytes. Padding bytes
// stay zero. Every declared field must be present in rec.
func (l Layout) Encode(rec Record) ([]byte, error) {
	buf := make([]byte, l.Width())
	for _, f := range l {
		v, ok := rec[f.Name]
		if !ok {
			return nil, fmt.Errorf("encode: missing field %q", f.Name)
		}
		b, err := f.Enc(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Name, err)
		}
		if len(b) != f.Width {
			return nil, fmt.Errorf("encode field %q: produced %d bytes, declared width %d", f.Name, len(b), f.Width)
		}
		copy(buf[f.Offset:f.Offset+f.Width], b)
	}
	return buf, nil
}
