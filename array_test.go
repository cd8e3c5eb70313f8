package attrib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/attrib/value"
)

func newArray(t *testing.T, size int) *Store {
	t.Helper()
	s, err := NewArray(size)
	require.NoError(t, err)
	return s
}

// Scenario: positional slots, unwritten slots are absent.
func TestArraySetGet(t *testing.T) {
	s := newArray(t, 3)
	assert.Equal(t, Array, s.Mode())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 0, s.Occupied())

	require.NoError(t, s.ArraySet(0, "a", value.Bytes([]byte{65})))

	_, ok, err := s.ArrayGet(1)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ArraySet(1, "b", value.Shorts([]int16{-7, 7})))
	e, ok, err := s.ArrayGet(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", e.Name)
	assert.True(t, value.Shorts([]int16{-7, 7}).Equal(e.Value))

	e, ok, err = s.ArrayGet(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, value.Bytes([]byte{65}).Equal(e.Value))

	assert.Equal(t, 3, s.Count(), "count never changes in array mode")
	assert.Equal(t, 2, s.Occupied())
}

func TestArraySetReplaces(t *testing.T) {
	s := newArray(t, 2)
	require.NoError(t, s.ArraySet(1, "x", value.Ints([]int32{1})))
	require.NoError(t, s.ArraySet(1, "y", value.Doubles([]float64{2})))

	e, ok, err := s.ArrayGet(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "y", e.Name)
	assert.Equal(t, value.Double, e.Type())
	assert.Equal(t, 1, s.Occupied())
}

func TestArrayDuplicateNames(t *testing.T) {
	s := newArray(t, 3)
	require.NoError(t, s.ArraySet(2, "dup", value.Ints([]int32{2})))
	require.NoError(t, s.ArraySet(1, "dup", value.Ints([]int32{1})))

	// Lookup by name picks the lowest slot.
	assert.Equal(t, 1, s.GetAsInteger("dup", 0))
	assert.Equal(t, []string{"dup", "dup"}, s.Names())
}

func TestArrayBounds(t *testing.T) {
	s := newArray(t, 2)

	for _, index := range []int{-1, 2, 100} {
		err := s.ArraySet(index, "x", value.String("y"))
		var ie *IndexError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, index, ie.Index)
		assert.Equal(t, 2, ie.Size)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, err, ErrContractViolation)

		_, ok, err := s.ArrayGet(index)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	assert.Equal(t, 0, s.Occupied())
}

func TestArrayZeroSize(t *testing.T) {
	s := newArray(t, 0)
	assert.Equal(t, 0, s.Count())

	_, ok, err := s.ArrayGet(0)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.ArraySet(0, "a", value.String("b")), ErrIndexOutOfRange)
}

func TestArraySetData(t *testing.T) {
	s := newArray(t, 1)
	require.NoError(t, s.ArraySetData(0, "s", value.Byte, value.StringCount, []byte("abc\x00def")))
	e, ok, err := s.ArrayGet(0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, e.Count())

	err = s.ArraySetData(0, "bad", value.Float, 2, []byte{0})
	assert.ErrorIs(t, err, ErrContractViolation)
	e, _, _ = s.ArrayGet(0)
	assert.Equal(t, "s", e.Name, "failed write leaves the slot unchanged")
}

func TestArrayForEach(t *testing.T) {
	s := newArray(t, 5)
	require.NoError(t, s.ArraySet(3, "d", value.String("3")))
	require.NoError(t, s.ArraySet(0, "a", value.String("0")))
	require.NoError(t, s.ArraySet(4, "e", value.String("4")))

	var indexes []int
	var names []string
	s.ForEach(func(i int, e Entry) bool {
		indexes = append(indexes, i)
		names = append(names, e.Name)
		return true
	})
	assert.Equal(t, []int{0, 1, 2}, indexes)
	assert.Equal(t, []string{"a", "d", "e"}, names)

	var first []string
	for _, e := range s.All() {
		first = append(first, e.Name)
		break
	}
	assert.Equal(t, []string{"a"}, first)
}

func TestArrayRemoveAll(t *testing.T) {
	s := newArray(t, 3)
	require.NoError(t, s.ArraySet(0, "a", value.String("0")))
	require.NoError(t, s.ArraySet(2, "c", value.String("2")))

	s.RemoveAll()
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 0, s.Occupied())
	for i := 0; i < 3; i++ {
		_, ok, err := s.ArrayGet(i)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	require.NoError(t, s.ArraySet(2, "c", value.String("again")))
	assert.Equal(t, 1, s.Occupied())

	s.Destroy()
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0, s.Occupied())
	assert.ErrorIs(t, s.ArraySet(0, "a", value.String("x")), ErrDestroyed)
	_, ok, err := s.ArrayGet(0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestArrayOperationsOnTable(t *testing.T) {
	s := newTable(t, 0)
	assert.ErrorIs(t, s.ArraySet(0, "a", value.String("x")), ErrWrongMode)
	_, _, err := s.ArrayGet(0)
	assert.ErrorIs(t, err, ErrWrongMode)
}
