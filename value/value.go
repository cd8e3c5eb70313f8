package value

import (
	"bytes"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/attrib/internal/conv"
)

// Value is a typed array of elements.
//
// Exactly one of the element slices is in use, selected by the type tag.
// The zero Value is an empty Byte array.
type Value struct {
	typ  Type
	u8   []uint8
	i16  []int16
	u16  []uint16
	i32  []int32
	f32  []float32
	f64  []float64
	c64  []complex64
	c128 []complex128
}

// Bytes returns a Byte Value backed by v.
func Bytes(v []uint8) Value { return Value{typ: Byte, u8: v} }

// Shorts returns a Short Value backed by v.
func Shorts(v []int16) Value { return Value{typ: Short, i16: v} }

// UShorts returns a UShort Value backed by v.
func UShorts(v []uint16) Value { return Value{typ: UShort, u16: v} }

// Ints returns an Int Value backed by v.
func Ints(v []int32) Value { return Value{typ: Int, i32: v} }

// Floats returns a Float Value backed by v.
func Floats(v []float32) Value { return Value{typ: Float, f32: v} }

// Doubles returns a Double Value backed by v.
func Doubles(v []float64) Value { return Value{typ: Double, f64: v} }

// ComplexFloats returns a ComplexFloat Value backed by v.
func ComplexFloats(v []complex64) Value { return Value{typ: ComplexFloat, c64: v} }

// ComplexDoubles returns a ComplexDouble Value backed by v.
func ComplexDoubles(v []complex128) Value { return Value{typ: ComplexDouble, c128: v} }

// String returns a Byte Value holding s followed by a NUL byte.
func String(s string) Value {
	b := make([]uint8, len(s)+1)
	copy(b, s)
	return Value{typ: Byte, u8: b}
}

// MaxSize is the largest element buffer, in bytes, a Value may hold.
const MaxSize = math.MaxInt32

// MaxLen returns the largest element count of type t that fits in MaxSize.
func MaxLen(t Type) int {
	if !t.Valid() {
		return 0
	}
	return MaxSize / t.Size()
}

// Zero returns a zero-filled Value of n elements of type t.
// n must be in [0, MaxLen(t)].
func Zero(t Type, n int) (Value, error) {
	if !t.Valid() {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}
	if n < 0 || n > MaxLen(t) {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	v := Value{typ: t}
	switch t {
	case Byte:
		v.u8 = make([]uint8, n)
	case Short:
		v.i16 = make([]int16, n)
	case UShort:
		v.u16 = make([]uint16, n)
	case Int:
		v.i32 = make([]int32, n)
	case Float:
		v.f32 = make([]float32, n)
	case Double:
		v.f64 = make([]float64, n)
	case ComplexFloat:
		v.c64 = make([]complex64, n)
	case ComplexDouble:
		v.c128 = make([]complex128, n)
	}
	return v, nil
}

// Type returns the element type.
func (v Value) Type() Type { return v.typ }

// Len returns the number of elements.
func (v Value) Len() int {
	switch v.typ {
	case Byte:
		return len(v.u8)
	case Short:
		return len(v.i16)
	case UShort:
		return len(v.u16)
	case Int:
		return len(v.i32)
	case Float:
		return len(v.f32)
	case Double:
		return len(v.f64)
	case ComplexFloat:
		return len(v.c64)
	case ComplexDouble:
		return len(v.c128)
	default:
		return 0
	}
}

// Size returns the size of the element buffer in bytes.
func (v Value) Size() int {
	return v.Len() * v.typ.Size()
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	out := Value{typ: v.typ}
	switch v.typ {
	case Byte:
		out.u8 = slices.Clone(v.u8)
	case Short:
		out.i16 = slices.Clone(v.i16)
	case UShort:
		out.u16 = slices.Clone(v.u16)
	case Int:
		out.i32 = slices.Clone(v.i32)
	case Float:
		out.f32 = slices.Clone(v.f32)
	case Double:
		out.f64 = slices.Clone(v.f64)
	case ComplexFloat:
		out.c64 = slices.Clone(v.c64)
	case ComplexDouble:
		out.c128 = slices.Clone(v.c128)
	}
	return out
}

// Equal reports whether v and other have the same type and byte-identical elements.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ || v.Len() != other.Len() {
		return false
	}
	return bytes.Equal(v.Raw(), other.Raw())
}

// Int returns element i coerced to an integer.
//
// Integer elements widen with their own signedness. Float elements truncate
// toward zero, saturating at the int32 range. The second result is false when
// i is out of range or the element type is complex.
func (v Value) Int(i int) (int, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch v.typ {
	case Byte:
		return int(v.u8[i]), true
	case Short:
		return int(v.i16[i]), true
	case UShort:
		return int(v.u16[i]), true
	case Int:
		return int(v.i32[i]), true
	case Float:
		return int(conv.FloatToInt32(float64(v.f32[i]))), true
	case Double:
		return int(conv.FloatToInt32(v.f64[i])), true
	default:
		return 0, false
	}
}

// Float returns element i widened to float64.
// The second result is false when i is out of range or the element type is complex.
func (v Value) Float(i int) (float64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch v.typ {
	case Byte:
		return float64(v.u8[i]), true
	case Short:
		return float64(v.i16[i]), true
	case UShort:
		return float64(v.u16[i]), true
	case Int:
		return float64(v.i32[i]), true
	case Float:
		return float64(v.f32[i]), true
	case Double:
		return v.f64[i], true
	default:
		return 0, false
	}
}

// Complex returns element i as complex128. Real elements get a zero imaginary part.
func (v Value) Complex(i int) (complex128, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch v.typ {
	case ComplexFloat:
		return complex128(v.c64[i]), true
	case ComplexDouble:
		return v.c128[i], true
	default:
		f, ok := v.Float(i)
		return complex(f, 0), ok
	}
}

// CString returns the bytes before the first NUL.
//
// It succeeds only for Byte values that contain a zero byte; arbitrary binary
// blobs are not treated as strings.
func (v Value) CString() (string, bool) {
	if v.typ != Byte {
		return "", false
	}
	n := bytes.IndexByte(v.u8, 0)
	if n < 0 {
		return "", false
	}
	return string(v.u8[:n]), true
}

// AsBytes returns the elements if the type is Byte.
func (v Value) AsBytes() ([]uint8, bool) { return v.u8, v.typ == Byte }

// AsShorts returns the elements if the type is Short.
func (v Value) AsShorts() ([]int16, bool) { return v.i16, v.typ == Short }

// AsUShorts returns the elements if the type is UShort.
func (v Value) AsUShorts() ([]uint16, bool) { return v.u16, v.typ == UShort }

// AsInts returns the elements if the type is Int.
func (v Value) AsInts() ([]int32, bool) { return v.i32, v.typ == Int }

// AsFloats returns the elements if the type is Float.
func (v Value) AsFloats() ([]float32, bool) { return v.f32, v.typ == Float }

// AsDoubles returns the elements if the type is Double.
func (v Value) AsDoubles() ([]float64, bool) { return v.f64, v.typ == Double }

// AsComplexFloats returns the elements if the type is ComplexFloat.
func (v Value) AsComplexFloats() ([]complex64, bool) { return v.c64, v.typ == ComplexFloat }

// AsComplexDoubles returns the elements if the type is ComplexDouble.
func (v Value) AsComplexDoubles() ([]complex128, bool) { return v.c128, v.typ == ComplexDouble }

// Interface returns the active element slice as an untyped value
// ([]uint8, []int16, []uint16, []int32, []float32, []float64, []complex64 or []complex128).
// The slice is shared with v.
func (v Value) Interface() any {
	switch v.typ {
	case Byte:
		return v.u8
	case Short:
		return v.i16
	case UShort:
		return v.u16
	case Int:
		return v.i32
	case Float:
		return v.f32
	case Double:
		return v.f64
	case ComplexFloat:
		return v.c64
	case ComplexDouble:
		return v.c128
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return fmt.Sprintf("%s%v", v.typ, v.Interface())
}
