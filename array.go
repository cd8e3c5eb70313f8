package attrib

import (
	"github.com/hupe1980/attrib/internal/conv"
	"github.com/hupe1980/attrib/value"
)

// ArraySet stores a copy of v with the given name in slot index.
//
// index must satisfy 0 <= index < Capacity(); otherwise an *IndexError is
// returned and the store is unchanged. Any previous occupant of the slot is
// released. Count never changes.
func (s *Store) ArraySet(index int, name string, v value.Value) error {
	return s.arraySet(index, name, func() (value.Value, error) {
		return v.Clone(), nil
	})
}

// ArraySetData is ArraySet for a raw (type, count, data) triple; see SetData.
func (s *Store) ArraySetData(index int, name string, typ value.Type, count int, data []byte) error {
	return s.arraySet(index, name, func() (value.Value, error) {
		v, err := value.FromBytes(typ, count, data)
		if err != nil {
			return value.Value{}, invalidInput(err)
		}
		return v, nil
	})
}

func (s *Store) arraySet(index int, name string, build func() (value.Value, error)) error {
	pos, err := s.slot(index, "array_set")
	if err != nil {
		s.metrics.RecordSet(false, err)
		return err
	}

	v, err := build()
	if err != nil {
		s.metrics.RecordSet(false, err)
		s.logger.LogViolation("array_set", err)
		return err
	}

	replaced := s.slots[index] != nil
	s.slots[index] = &Entry{Name: name, Value: v}
	s.occupied.Add(pos)

	s.metrics.RecordSet(replaced, nil)
	s.logger.LogSet(name, v.Type(), v.Len(), replaced)
	return nil
}

// ArrayGet returns the entry in slot index.
//
// The boolean is false when the store has no slots or the slot is empty.
// An index outside [0, Capacity()) is a contract violation and returns an
// *IndexError.
func (s *Store) ArrayGet(index int) (Entry, bool, error) {
	if s.destroyed || (s.mode == Array && s.capacity == 0) {
		s.metrics.RecordGet(false)
		return Entry{}, false, nil
	}
	if _, err := s.slot(index, "array_get"); err != nil {
		return Entry{}, false, err
	}

	e := s.slots[index]
	s.metrics.RecordGet(e != nil)
	if e == nil {
		return Entry{}, false, nil
	}
	return *e, true, nil
}

// Occupied returns the number of written slots of an Array store, or the
// entry count of a Hashed store.
func (s *Store) Occupied() int {
	if s.destroyed {
		return 0
	}
	if s.mode == Array {
		return int(s.occupied.GetCardinality())
	}
	return s.count
}

// slot validates an Array slot index and converts it for the occupancy bitmap.
func (s *Store) slot(index int, op string) (uint32, error) {
	if err := s.require(Array, op); err != nil {
		return 0, err
	}
	if index < 0 || index >= s.capacity {
		err := &IndexError{Index: index, Size: s.capacity}
		s.logger.LogViolation(op, err)
		return 0, err
	}
	return conv.IntToUint32(index)
}
