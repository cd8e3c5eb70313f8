package value

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// StringCount is the count sentinel that makes FromBytes read a Byte buffer
// as a NUL-terminated string.
const StringCount = -1

// FromBytes decodes count little-endian elements of type t from data.
//
// A nil data yields a zero-filled Value of at most MaxLen(t) elements.
// Otherwise data must hold count elements. For t == Byte and count == StringCount
// the count becomes the position of the first NUL in data plus one.
// The returned Value never aliases data.
func FromBytes(t Type, count int, data []byte) (Value, error) {
	if !t.Valid() {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}
	if t == Byte && count == StringCount {
		n := bytes.IndexByte(data, 0)
		if n < 0 {
			return Value{}, ErrUnterminated
		}
		count = n + 1
	}

	if count < 0 {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	// Checked before allocating; count*size may overflow.
	if data != nil && count > len(data)/t.Size() {
		return Value{}, fmt.Errorf("%w: %d %s elements, have %d bytes", ErrShortData, count, t, len(data))
	}

	v, err := Zero(t, count)
	if err != nil {
		return Value{}, err
	}
	if data == nil {
		return v, nil
	}

	le := binary.LittleEndian
	switch t {
	case Byte:
		copy(v.u8, data)
	case Short:
		for i := range v.i16 {
			v.i16[i] = int16(le.Uint16(data[i*2:]))
		}
	case UShort:
		for i := range v.u16 {
			v.u16[i] = le.Uint16(data[i*2:])
		}
	case Int:
		for i := range v.i32 {
			v.i32[i] = int32(le.Uint32(data[i*4:]))
		}
	case Float:
		for i := range v.f32 {
			v.f32[i] = math.Float32frombits(le.Uint32(data[i*4:]))
		}
	case Double:
		for i := range v.f64 {
			v.f64[i] = math.Float64frombits(le.Uint64(data[i*8:]))
		}
	case ComplexFloat:
		for i := range v.c64 {
			re := math.Float32frombits(le.Uint32(data[i*8:]))
			im := math.Float32frombits(le.Uint32(data[i*8+4:]))
			v.c64[i] = complex(re, im)
		}
	case ComplexDouble:
		for i := range v.c128 {
			re := math.Float64frombits(le.Uint64(data[i*16:]))
			im := math.Float64frombits(le.Uint64(data[i*16+8:]))
			v.c128[i] = complex(re, im)
		}
	}
	return v, nil
}

// Raw returns the little-endian encoding of the elements.
// The result has exactly Size() bytes and is decoded by FromBytes.
func (v Value) Raw() []byte {
	le := binary.LittleEndian
	out := make([]byte, 0, v.Size())
	switch v.typ {
	case Byte:
		out = append(out, v.u8...)
	case Short:
		for _, x := range v.i16 {
			out = le.AppendUint16(out, uint16(x))
		}
	case UShort:
		for _, x := range v.u16 {
			out = le.AppendUint16(out, x)
		}
	case Int:
		for _, x := range v.i32 {
			out = le.AppendUint32(out, uint32(x))
		}
	case Float:
		for _, x := range v.f32 {
			out = le.AppendUint32(out, math.Float32bits(x))
		}
	case Double:
		for _, x := range v.f64 {
			out = le.AppendUint64(out, math.Float64bits(x))
		}
	case ComplexFloat:
		for _, x := range v.c64 {
			out = le.AppendUint32(out, math.Float32bits(real(x)))
			out = le.AppendUint32(out, math.Float32bits(imag(x)))
		}
	case ComplexDouble:
		for _, x := range v.c128 {
			out = le.AppendUint64(out, math.Float64bits(real(x)))
			out = le.AppendUint64(out, math.Float64bits(imag(x)))
		}
	}
	return out
}
