// Package value defines the typed, variable-length values stored in attributes.
//
// # Element Types
//
// Every Value holds a homogeneous array of one of eight element types:
//
//	Type           Go element    Size
//	Byte           uint8         1
//	Short          int16         2
//	UShort         uint16        2
//	Int            int32         4
//	Float          float32       4
//	Double         float64       8
//	ComplexFloat   complex64     8
//	ComplexDouble  complex128    16
//
// The numeric codes (Byte = 0 ... ComplexDouble = 7) are stable and may be used
// by bindings that exchange type tags as integers.
//
// # Constructing Values
//
//	v := value.Ints([]int32{640, 480})
//	s := value.String("image/tiff")        // Byte array with a trailing NUL
//	z, _ := value.Zero(value.Double, 3)      // three zero doubles
//
// Raw little-endian buffers are decoded with FromBytes. A Byte value with count
// -1 is read as a NUL-terminated string:
//
//	v, err := value.FromBytes(value.Byte, -1, []byte("hello\x00"))
//
// Dynamic input (scalars, slices, []any) is converted with FromAny, which
// coerces every element to the requested type.
//
// # Ownership
//
// The slice constructors wrap their argument without copying. Clone returns a
// Value that shares no memory with the original; stores clone on every write.
package value
