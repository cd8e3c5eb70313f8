package binding

import (
	"github.com/hupe1980/attrib"
	"github.com/hupe1980/attrib/value"
)

// SetAttribute converts data to typ and stores it under name.
//
// A nil data removes the attribute. A string is accepted only for
// value.Byte and is stored with a terminating NUL.
func SetAttribute(s *attrib.Store, name string, typ value.Type, data any) error {
	if data == nil {
		return s.Unset(name)
	}

	v, err := value.FromAny(typ, data)
	if err != nil {
		return err
	}
	return s.Set(name, v)
}

// GetAttribute returns a copy of the elements stored under name together
// with their type.
//
// The elements are returned as the typed slice of value.Value.Interface.
// When asString is set and the attribute is a Byte array, the bytes before
// the first NUL are returned as a string instead.
func GetAttribute(s *attrib.Store, name string, asString bool) (any, value.Type, bool) {
	e, ok := s.Get(name)
	if !ok {
		return nil, 0, false
	}

	if asString && e.Type() == value.Byte {
		if str, ok := e.Value.CString(); ok {
			return str, value.Byte, true
		}
		raw, _ := e.Value.AsBytes()
		return string(raw), value.Byte, true
	}
	return e.Value.Clone().Interface(), e.Type(), true
}

// SetAttribInteger stores v as a single element of type typ.
func SetAttribInteger(s *attrib.Store, name string, typ value.Type, v int) error {
	return s.SetAsInteger(name, typ, v)
}

// SetAttribReal stores v as a single element of type typ.
func SetAttribReal(s *attrib.Store, name string, typ value.Type, v float64) error {
	return s.SetAsReal(name, typ, v)
}

// SetAttribString stores str as a NUL-terminated Byte attribute.
func SetAttribString(s *attrib.Store, name, str string) error {
	return s.SetAsString(name, str)
}

// GetAttribInteger returns element index of the attribute as an integer, or 0.
func GetAttribInteger(s *attrib.Store, name string, index int) int {
	return s.GetAsInteger(name, index)
}

// GetAttribReal returns element index of the attribute as a float64, or 0.
func GetAttribReal(s *attrib.Store, name string, index int) float64 {
	return s.GetAsReal(name, index)
}

// GetAttribString returns the attribute as a string. The second result is
// false when the attribute is absent or not a NUL-terminated Byte array.
func GetAttribString(s *attrib.Store, name string) (string, bool) {
	return s.GetAsString(name)
}

// AttributeList returns the attribute names in enumeration order.
func AttributeList(s *attrib.Store) []string {
	return s.Names()
}

// CopyAttributes copies every attribute of src into dst, replacing
// attributes with the same name.
func CopyAttributes(src, dst *attrib.Store) error {
	return attrib.CopyAllInto(dst, src)
}

// MergeAttributes copies the attributes of src whose names dst lacks.
func MergeAttributes(src, dst *attrib.Store) error {
	return attrib.MergeInto(dst, src)
}
