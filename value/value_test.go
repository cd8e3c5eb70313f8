package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	sizes := map[Type]int{
		Byte: 1, Short: 2, UShort: 2, Int: 4,
		Float: 4, Double: 8, ComplexFloat: 8, ComplexDouble: 16,
	}
	for typ, size := range sizes {
		assert.True(t, typ.Valid())
		assert.Equal(t, size, typ.Size(), typ.String())
	}

	assert.False(t, Type(8).Valid())
	assert.Equal(t, 0, Type(8).Size())
	assert.Equal(t, "type(8)", Type(8).String())

	assert.True(t, ComplexFloat.IsComplex())
	assert.True(t, ComplexDouble.IsComplex())
	assert.False(t, Double.IsComplex())

	// Numeric codes are part of the binding contract.
	assert.Equal(t, uint8(0), uint8(Byte))
	assert.Equal(t, uint8(3), uint8(Int))
	assert.Equal(t, uint8(7), uint8(ComplexDouble))
}

func TestTypeText(t *testing.T) {
	for typ := Byte; typ <= ComplexDouble; typ++ {
		text, err := typ.MarshalText()
		require.NoError(t, err)

		var parsed Type
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, typ, parsed)
	}

	_, err := Type(42).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseType("long")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestZero(t *testing.T) {
	v, err := Zero(Double, 3)
	require.NoError(t, err)
	assert.Equal(t, Double, v.Type())
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 24, v.Size())
	d, ok := v.AsDoubles()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 0, 0}, d)

	_, err = Zero(Int, -1)
	assert.ErrorIs(t, err, ErrInvalidCount)

	_, err = Zero(Double, MaxLen(Double)+1)
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Equal(t, MaxSize/16, MaxLen(ComplexDouble))
	assert.Equal(t, 0, MaxLen(Type(99)))

	_, err = Zero(Type(99), 1)
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestZeroValue(t *testing.T) {
	var v Value
	assert.Equal(t, Byte, v.Type())
	assert.Equal(t, 0, v.Len())
	_, ok := v.CString()
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	src := []int32{1, 2, 3}
	v := Ints(src)
	c := v.Clone()

	src[0] = 100
	got, ok := c.AsInts()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 2, 3}, got)
	assert.False(t, v.Equal(c))

	orig, _ := v.AsInts()
	assert.NotSame(t, &orig[0], &got[0])
}

func TestEqual(t *testing.T) {
	assert.True(t, Shorts([]int16{1, -1}).Equal(Shorts([]int16{1, -1})))
	assert.False(t, Shorts([]int16{1}).Equal(UShorts([]uint16{1})), "type participates")
	assert.False(t, Bytes([]byte{1}).Equal(Bytes([]byte{1, 2})))

	nan := math.NaN()
	assert.True(t, Doubles([]float64{nan}).Equal(Doubles([]float64{nan})), "byte equality, not float equality")
}

func TestInt(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  int
	}{
		{name: "byte is unsigned", value: Bytes([]uint8{200}), want: 200},
		{name: "short keeps sign", value: Shorts([]int16{-5}), want: -5},
		{name: "ushort widens", value: UShorts([]uint16{65535}), want: 65535},
		{name: "int", value: Ints([]int32{-123456}), want: -123456},
		{name: "float truncates", value: Floats([]float32{2.75}), want: 2},
		{name: "negative double truncates toward zero", value: Doubles([]float64{-2.75}), want: -2},
		{name: "double saturates", value: Doubles([]float64{1e12}), want: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Int(0)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("complex is unsupported", func(t *testing.T) {
		_, ok := ComplexFloats([]complex64{1 + 2i}).Int(0)
		assert.False(t, ok)
		_, ok = ComplexDoubles([]complex128{1 + 2i}).Float(0)
		assert.False(t, ok)
	})

	t.Run("out of range", func(t *testing.T) {
		v := Ints([]int32{7})
		_, ok := v.Int(1)
		assert.False(t, ok)
		_, ok = v.Int(-1)
		assert.False(t, ok)
		_, ok = v.Float(1)
		assert.False(t, ok)
	})
}

func TestFloat(t *testing.T) {
	f, ok := Shorts([]int16{-3}).Float(0)
	require.True(t, ok)
	assert.Equal(t, -3.0, f)

	f, ok = Floats([]float32{0.5}).Float(0)
	require.True(t, ok)
	assert.Equal(t, 0.5, f)
}

func TestComplex(t *testing.T) {
	c, ok := ComplexFloats([]complex64{1 + 2i}).Complex(0)
	require.True(t, ok)
	assert.Equal(t, complex128(1+2i), c)

	c, ok = Ints([]int32{4}).Complex(0)
	require.True(t, ok)
	assert.Equal(t, complex128(4), c)
}

func TestCString(t *testing.T) {
	s, ok := String("hello").CString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	s, ok = Bytes([]byte("ab\x00cd\x00")).CString()
	require.True(t, ok)
	assert.Equal(t, "ab", s)

	_, ok = Bytes([]byte{1, 2, 3}).CString()
	assert.False(t, ok, "binary blob without NUL is not a string")

	_, ok = Shorts([]int16{0}).CString()
	assert.False(t, ok)
}

func TestInterface(t *testing.T) {
	assert.Equal(t, []uint8{1}, Bytes([]uint8{1}).Interface())
	assert.Equal(t, []float32{1.5}, Floats([]float32{1.5}).Interface())
	assert.Equal(t, []complex128{1i}, ComplexDoubles([]complex128{1i}).Interface())
	assert.Equal(t, "int[1 2]", Ints([]int32{1, 2}).String())
}
