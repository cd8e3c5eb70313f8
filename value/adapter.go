package value

import (
	"fmt"

	"github.com/hupe1980/attrib/internal/conv"
)

// scalar is one dynamic input element before conversion to the target type.
type scalar struct {
	kind scalarKind
	i    int64
	f    float64
	c    complex128
}

type scalarKind uint8

const (
	scalarInt scalarKind = iota
	scalarFloat
	scalarComplex
)

// FromAny converts dynamic input into a Value of type t.
//
// This exists as an adapter layer for bindings that receive untyped data.
// Accepted input:
//
//   - nil: an empty Value
//   - Value: cloned when its type is t
//   - string: only for t == Byte, stored with a trailing NUL
//   - []byte: only for t == Byte, copied as-is
//   - integer, float and complex scalars: a one-element Value
//   - slices of those, []any of those, and [][2]float32 / [][2]float64 pairs
//
// Every element is coerced to t: integers narrow with two's-complement
// wrapping, floats truncate toward zero and saturate, reals become complex
// numbers with a zero imaginary part. Complex input for a real type is rejected.
func FromAny(t Type, v any) (Value, error) {
	if !t.Valid() {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}

	switch x := v.(type) {
	case nil:
		return Zero(t, 0)
	case Value:
		if x.Type() != t {
			return Value{}, fmt.Errorf("%w: %s value for %s attribute", ErrUnsupported, x.Type(), t)
		}
		return x.Clone(), nil
	case string:
		if t != Byte {
			return Value{}, ErrStringType
		}
		return String(x), nil
	case []byte:
		if t == Byte {
			return Bytes(append([]byte(nil), x...)), nil
		}
	}

	elems, err := scalars(v)
	if err != nil {
		return Value{}, err
	}
	return build(t, elems)
}

// scalars flattens supported dynamic input into scalar elements.
func scalars(v any) ([]scalar, error) {
	if s, ok := toScalar(v); ok {
		return []scalar{s}, nil
	}

	switch x := v.(type) {
	case []byte:
		return collect(x), nil
	case []int8:
		return collect(x), nil
	case []int16:
		return collect(x), nil
	case []uint16:
		return collect(x), nil
	case []int32:
		return collect(x), nil
	case []uint32:
		return collect(x), nil
	case []int:
		return collect(x), nil
	case []int64:
		return collect(x), nil
	case []float32:
		return collect(x), nil
	case []float64:
		return collect(x), nil
	case []complex64:
		return collect(x), nil
	case []complex128:
		return collect(x), nil
	case [][2]float32:
		out := make([]scalar, len(x))
		for i, p := range x {
			out[i] = scalar{kind: scalarComplex, c: complex(float64(p[0]), float64(p[1]))}
		}
		return out, nil
	case [][2]float64:
		out := make([]scalar, len(x))
		for i, p := range x {
			out[i] = scalar{kind: scalarComplex, c: complex(p[0], p[1])}
		}
		return out, nil
	case []any:
		out := make([]scalar, len(x))
		for i := range x {
			s, ok := toScalar(x[i])
			if !ok {
				return nil, fmt.Errorf("%w: element %d has type %T", ErrUnsupported, i, x[i])
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func collect[E any](xs []E) []scalar {
	out := make([]scalar, len(xs))
	for i := range xs {
		// toScalar accepts every element type collect is instantiated with.
		out[i], _ = toScalar(xs[i])
	}
	return out
}

func toScalar(v any) (scalar, bool) {
	switch x := v.(type) {
	case int:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case int8:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case int16:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case int32:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case int64:
		return scalar{kind: scalarInt, i: x}, true
	case uint8:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case uint16:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case uint32:
		return scalar{kind: scalarInt, i: int64(x)}, true
	case float32:
		return scalar{kind: scalarFloat, f: float64(x)}, true
	case float64:
		return scalar{kind: scalarFloat, f: x}, true
	case complex64:
		return scalar{kind: scalarComplex, c: complex128(x)}, true
	case complex128:
		return scalar{kind: scalarComplex, c: x}, true
	case [2]float32:
		return scalar{kind: scalarComplex, c: complex(float64(x[0]), float64(x[1]))}, true
	case [2]float64:
		return scalar{kind: scalarComplex, c: complex(x[0], x[1])}, true
	default:
		return scalar{}, false
	}
}

// build converts scalars into a Value of type t.
func build(t Type, elems []scalar) (Value, error) {
	v, err := Zero(t, len(elems))
	if err != nil {
		return Value{}, err
	}

	for i, s := range elems {
		if s.kind == scalarComplex && !t.IsComplex() {
			return Value{}, fmt.Errorf("%w: complex element %d for %s attribute", ErrUnsupported, i, t)
		}
		switch t {
		case Byte:
			v.u8[i] = s.toUint8()
		case Short:
			v.i16[i] = s.toInt16()
		case UShort:
			v.u16[i] = s.toUint16()
		case Int:
			v.i32[i] = s.toInt32()
		case Float:
			v.f32[i] = float32(s.toFloat())
		case Double:
			v.f64[i] = s.toFloat()
		case ComplexFloat:
			v.c64[i] = complex64(s.toComplex())
		case ComplexDouble:
			v.c128[i] = s.toComplex()
		}
	}
	return v, nil
}

func (s scalar) toUint8() uint8 {
	if s.kind == scalarInt {
		return uint8(s.i)
	}
	return conv.FloatToUint8(s.f)
}

func (s scalar) toInt16() int16 {
	if s.kind == scalarInt {
		return int16(s.i)
	}
	return conv.FloatToInt16(s.f)
}

func (s scalar) toUint16() uint16 {
	if s.kind == scalarInt {
		return uint16(s.i)
	}
	return conv.FloatToUint16(s.f)
}

func (s scalar) toInt32() int32 {
	if s.kind == scalarInt {
		return int32(s.i)
	}
	return conv.FloatToInt32(s.f)
}

func (s scalar) toFloat() float64 {
	if s.kind == scalarInt {
		return float64(s.i)
	}
	return s.f
}

func (s scalar) toComplex() complex128 {
	switch s.kind {
	case scalarInt:
		return complex(float64(s.i), 0)
	case scalarFloat:
		return complex(s.f, 0)
	default:
		return s.c
	}
}

// Components flattens v into float64 components: one per real element,
// two (real, imaginary) per complex element.
//
// Every element type converts exactly, which makes the result suitable for
// number-only interchange formats. Non-finite elements stay NaN or ±Inf.
func (v Value) Components() []float64 {
	n := v.Len()
	if v.typ.IsComplex() {
		out := make([]float64, 0, 2*n)
		for i := 0; i < n; i++ {
			c, _ := v.Complex(i)
			out = append(out, real(c), imag(c))
		}
		return out
	}
	out := make([]float64, n)
	for i := range out {
		out[i], _ = v.Float(i)
	}
	return out
}

// FromComponents is the inverse of Components.
// For complex types the component count must be even.
func FromComponents(t Type, components []float64) (Value, error) {
	if !t.Valid() {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}
	if !t.IsComplex() {
		elems := make([]scalar, len(components))
		for i, f := range components {
			elems[i] = scalar{kind: scalarFloat, f: f}
		}
		return build(t, elems)
	}
	if len(components)%2 != 0 {
		return Value{}, fmt.Errorf("%w: odd component count %d for %s", ErrInvalidCount, len(components), t)
	}
	elems := make([]scalar, len(components)/2)
	for i := range elems {
		elems[i] = scalar{kind: scalarComplex, c: complex(components[2*i], components[2*i+1])}
	}
	return build(t, elems)
}
