package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/attrib/value"
)

// Attribute is a generated name/value pair.
type Attribute struct {
	Name  string
	Value value.Value
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"

// Name returns a random identifier of length n.
func (r *RNG) Name(n int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = nameAlphabet[r.rand.Intn(len(nameAlphabet))]
	}
	return string(b)
}

// Type returns a random element type.
func (r *RNG) Type() value.Type {
	return value.Type(r.Intn(int(value.ComplexDouble) + 1))
}

// Value returns a Value of n random elements of type t.
func (r *RNG) Value(t value.Type, n int) value.Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch t {
	case value.Byte:
		v := make([]uint8, n)
		for i := range v {
			v[i] = uint8(r.rand.Intn(256))
		}
		return value.Bytes(v)
	case value.Short:
		v := make([]int16, n)
		for i := range v {
			v[i] = int16(r.rand.Intn(1 << 16))
		}
		return value.Shorts(v)
	case value.UShort:
		v := make([]uint16, n)
		for i := range v {
			v[i] = uint16(r.rand.Intn(1 << 16))
		}
		return value.UShorts(v)
	case value.Int:
		v := make([]int32, n)
		for i := range v {
			v[i] = int32(r.rand.Uint32())
		}
		return value.Ints(v)
	case value.Float:
		v := make([]float32, n)
		for i := range v {
			v[i] = r.rand.Float32()*2 - 1
		}
		return value.Floats(v)
	case value.Double:
		v := make([]float64, n)
		for i := range v {
			v[i] = r.rand.NormFloat64()
		}
		return value.Doubles(v)
	case value.ComplexFloat:
		v := make([]complex64, n)
		for i := range v {
			v[i] = complex(r.rand.Float32(), r.rand.Float32())
		}
		return value.ComplexFloats(v)
	default:
		v := make([]complex128, n)
		for i := range v {
			v[i] = complex(r.rand.NormFloat64(), r.rand.NormFloat64())
		}
		return value.ComplexDoubles(v)
	}
}

// Attributes returns n attributes with unique names, random types and up to
// maxLen elements each.
func (r *RNG) Attributes(n, maxLen int) []Attribute {
	out := make([]Attribute, n)
	for i := range out {
		out[i] = Attribute{
			// The index suffix keeps names unique.
			Name:  r.Name(6) + "_" + strconv.Itoa(i),
			Value: r.Value(r.Type(), r.Intn(maxLen+1)),
		}
	}
	return out
}
