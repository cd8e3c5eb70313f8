package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/attrib/value"
)

func TestName(t *testing.T) {
	rng := NewRNG(4711)

	name := rng.Name(12)
	assert.Len(t, name, 12)
	for _, c := range []byte(name) {
		assert.Contains(t, nameAlphabet, string(c))
	}
}

func TestValue(t *testing.T) {
	rng := NewRNG(4711)

	for typ := value.Byte; typ <= value.ComplexDouble; typ++ {
		v := rng.Value(typ, 5)
		assert.Equal(t, typ, v.Type())
		assert.Equal(t, 5, v.Len())
	}
}

func TestAttributes(t *testing.T) {
	rng := NewRNG(4711)

	attrs := rng.Attributes(50, 8)
	assert.Len(t, attrs, 50)

	seen := make(map[string]bool)
	for _, a := range attrs {
		assert.False(t, seen[a.Name], "duplicate name %s", a.Name)
		seen[a.Name] = true
		assert.LessOrEqual(t, a.Value.Len(), 8)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Attributes(10, 4)

	rng.Reset()
	second := rng.Attributes(10, 4)

	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.True(t, first[i].Value.Equal(second[i].Value))
	}
	assert.Equal(t, int64(42), rng.Seed())
}
