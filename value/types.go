package value

import "fmt"

// Type identifies the element type stored in a Value.
type Type uint8

const (
	// Byte is an unsigned 8-bit element.
	Byte Type = iota
	// Short is a signed 16-bit element.
	Short
	// UShort is an unsigned 16-bit element.
	UShort
	// Int is a signed 32-bit element.
	Int
	// Float is a 32-bit IEEE 754 element.
	Float
	// Double is a 64-bit IEEE 754 element.
	Double
	// ComplexFloat is a pair of 32-bit floats.
	ComplexFloat
	// ComplexDouble is a pair of 64-bit floats.
	ComplexDouble
)

var typeNames = [...]string{
	Byte:          "byte",
	Short:         "short",
	UShort:        "ushort",
	Int:           "int",
	Float:         "float",
	Double:        "double",
	ComplexFloat:  "cfloat",
	ComplexDouble: "cdouble",
}

var typeSizes = [...]int{
	Byte:          1,
	Short:         2,
	UShort:        2,
	Int:           4,
	Float:         4,
	Double:        8,
	ComplexFloat:  8,
	ComplexDouble: 16,
}

// Valid reports whether t is one of the eight element types.
func (t Type) Valid() bool {
	return t <= ComplexDouble
}

// Size returns the size of one element in bytes, or 0 for an invalid type.
func (t Type) Size() int {
	if !t.Valid() {
		return 0
	}
	return typeSizes[t]
}

// IsComplex reports whether t is ComplexFloat or ComplexDouble.
func (t Type) IsComplex() bool {
	return t == ComplexFloat || t == ComplexDouble
}

// String returns the lowercase name of the type.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("type(%d)", uint8(t))
	}
	return typeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidType, uint8(t))
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType returns the Type named s (as produced by Type.String).
func ParseType(s string) (Type, error) {
	for i, name := range typeNames {
		if name == s {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidType, s)
}
