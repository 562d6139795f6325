package layout

import (
	"fmt"

	"procmem/codec"
)

func scalar[T any](name string, offset, width int, dec func([]byte) (T, error), enc func(T) []byte) Field {
	return Field{
		Name:   name,
		Offset: offset,
		Width:  width,
		Dec: func(buf []byte) (any, error) {
			return dec(buf)
		},
		Enc: func(v any) ([]byte, error) {
			t, ok := v.(T)
			if !ok {
				return nil, fmt.Errorf("field %q: value is %T, want %T", name, v, t)
			}
			return enc(t), nil
		},
	}
}

func Uint16Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthUint16, codec.ToUint16, codec.FromUint16)
}

func Int16Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthInt16, codec.ToInt16, codec.FromInt16)
}

func Uint32Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthUint32, codec.ToUint32, codec.FromUint32)
}

func Int32Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthInt32, codec.ToInt32, codec.FromInt32)
}

func Uint64Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthUint64, codec.ToUint64, codec.FromUint64)
}

func Int64Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthInt64, codec.ToInt64, codec.FromInt64)
}

func Float32Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthFloat32, codec.ToFloat32, codec.FromFloat32)
}

func Float64Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthFloat64, codec.ToFloat64, codec.FromFloat64)
}

func Uint128Field(name string, offset int) Field {
	return scalar(name, offset, codec.WidthUint128, codec.ToUint128, codec.FromUint128)
}

// BytesField passes width raw bytes through untouched; the decoded value is
// a copy, never a view into the source buffer.
func BytesField(name string, offset, width int) Field {
	return Field{
		Name:   name,
		Offset: offset,
		Width:  width,
		Dec: func(buf []byte) (any, error) {
			out := make([]byte, width)
			copy(out, buf[:width])
			return out, nil
		},
		Enc: func(v any) ([]byte, error) {
			b, ok := v.([]byte)
			if !ok {
				return nil, fmt.Errorf("field %q: value is %T, want []byte", name, v)
			}
			if len(b) != width {
				return nil, fmt.Errorf("field %q: have %d bytes, declared width %d", name, len(b), width)
			}
			return b, nil
		},
	}
}
