package attrib

import (
	"fmt"

	"github.com/hupe1980/attrib/internal/conv"
	"github.com/hupe1980/attrib/value"
)

// GetAsInteger returns element index of the named attribute as an integer.
//
// It returns 0 when the attribute is absent, index is outside [0, count),
// or the element type is complex. Integer elements keep their sign; float
// elements truncate toward zero, saturating at the int32 range.
func (s *Store) GetAsInteger(name string, index int) int {
	e, ok := s.Get(name)
	if !ok {
		return 0
	}
	n, _ := e.Value.Int(index)
	return n
}

// GetAsReal returns element index of the named attribute widened to float64,
// with the same zero-result contract as GetAsInteger.
func (s *Store) GetAsReal(name string, index int) float64 {
	e, ok := s.Get(name)
	if !ok {
		return 0
	}
	f, _ := e.Value.Float(index)
	return f
}

// GetAsString returns the named attribute as a string.
//
// It succeeds only for Byte attributes with a zero byte among their elements;
// the result stops at the first zero byte.
func (s *Store) GetAsString(name string) (string, bool) {
	e, ok := s.Get(name)
	if !ok {
		return "", false
	}
	return e.Value.CString()
}

// SetAsInteger stores v as a one-element attribute of type typ.
//
// Integer types narrow with two's-complement wrapping. Complex types are not
// supported: the store is left unchanged and ErrUnsupportedConversion is returned.
func (s *Store) SetAsInteger(name string, typ value.Type, v int) error {
	var val value.Value
	switch typ {
	case value.Byte:
		val = value.Bytes([]uint8{uint8(v)})
	case value.Short:
		val = value.Shorts([]int16{int16(v)})
	case value.UShort:
		val = value.UShorts([]uint16{uint16(v)})
	case value.Int:
		val = value.Ints([]int32{int32(v)})
	case value.Float:
		val = value.Floats([]float32{float32(v)})
	case value.Double:
		val = value.Doubles([]float64{float64(v)})
	default:
		return s.rejectScalar("set_as_integer", typ)
	}
	return s.Set(name, val)
}

// SetAsReal stores v as a one-element attribute of type typ.
//
// Integer types truncate toward zero and saturate at their range. Complex
// types are not supported: the store is left unchanged and
// ErrUnsupportedConversion is returned.
func (s *Store) SetAsReal(name string, typ value.Type, v float64) error {
	var val value.Value
	switch typ {
	case value.Byte:
		val = value.Bytes([]uint8{conv.FloatToUint8(v)})
	case value.Short:
		val = value.Shorts([]int16{conv.FloatToInt16(v)})
	case value.UShort:
		val = value.UShorts([]uint16{conv.FloatToUint16(v)})
	case value.Int:
		val = value.Ints([]int32{conv.FloatToInt32(v)})
	case value.Float:
		val = value.Floats([]float32{float32(v)})
	case value.Double:
		val = value.Doubles([]float64{v})
	default:
		return s.rejectScalar("set_as_real", typ)
	}
	return s.Set(name, val)
}

// SetAsString stores str plus a terminating NUL as a Byte attribute of
// len(str)+1 elements.
func (s *Store) SetAsString(name, str string) error {
	return s.Set(name, value.String(str))
}

func (s *Store) rejectScalar(op string, typ value.Type) error {
	var err error
	if typ.IsComplex() {
		err = fmt.Errorf("%w: %s element type", ErrUnsupportedConversion, typ)
	} else {
		err = invalidInput(fmt.Errorf("%w: %d", value.ErrInvalidType, uint8(typ)))
	}
	s.metrics.RecordSet(false, err)
	s.logger.LogViolation(op, err)
	return err
}
