package attrib

import (
	"fmt"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/attrib/internal/hash"
	"github.com/hupe1980/attrib/value"
)

// DefaultBucketCount is the bucket count used when a hashed store is created
// with capacity 0.
const DefaultBucketCount = 101

// Mode selects how a store addresses its entries.
type Mode uint8

const (
	// Hashed stores are keyed by unique names distributed over a fixed set of buckets.
	Hashed Mode = iota
	// Array stores have a fixed number of positional slots.
	Array
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Hashed:
		return "hashed"
	case Array:
		return "array"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Entry is one named attribute.
type Entry struct {
	Name  string
	Value value.Value
}

// Type returns the element type of the attribute.
func (e Entry) Type() value.Type { return e.Value.Type() }

// Count returns the number of elements of the attribute.
func (e Entry) Count() int { return e.Value.Len() }

// Store is a table of named, typed attributes.
//
// A Store is not safe for concurrent use. Entries returned by Get, ArrayGet
// and enumeration share their element buffers with the store; clone the
// Value before modifying it.
type Store struct {
	mode     Mode
	capacity int
	count    int

	// buckets holds one chain per bucket in Hashed mode; index 0 is the chain head.
	// live has a bit set for every bucket with a non-empty chain.
	buckets [][]Entry
	live    *bitset.BitSet

	// slots holds the Array mode entries; nil marks a slot that was never
	// written or has been cleared. occupied mirrors the non-nil slots.
	slots    []*Entry
	occupied *roaring.Bitmap

	destroyed bool
	logger    *Logger
	metrics   MetricsCollector
}

// New creates a store of the given mode.
//
// For Hashed stores capacity is the bucket count (0 selects DefaultBucketCount).
// For Array stores capacity is the fixed number of slots.
func New(capacity int, mode Mode, opts ...Option) (*Store, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := applyOptions(opts)
	s := &Store{
		mode:    mode,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}

	switch mode {
	case Hashed:
		if capacity == 0 {
			capacity = DefaultBucketCount
		}
		s.buckets = make([][]Entry, capacity)
		s.live = bitset.New(uint(capacity))
	case Array:
		s.slots = make([]*Entry, capacity)
		s.occupied = roaring.New()
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrWrongMode, uint8(mode))
	}
	s.capacity = capacity
	s.logger = s.logger.WithMode(mode).WithCapacity(capacity)

	s.logger.Debug("store created")
	return s, nil
}

// NewTable creates a Hashed store with bucketCount buckets (0 selects DefaultBucketCount).
func NewTable(bucketCount int, opts ...Option) (*Store, error) {
	return New(bucketCount, Hashed, opts...)
}

// NewArray creates an Array store with size slots.
func NewArray(size int, opts ...Option) (*Store, error) {
	return New(size, Array, opts...)
}

// Mode returns the store mode.
func (s *Store) Mode() Mode { return s.mode }

// Capacity returns the bucket count (Hashed) or slot count (Array).
func (s *Store) Capacity() int { return s.capacity }

// Count returns the number of entries of a Hashed store.
//
// For an Array store, Count returns the fixed slot count: capacity and size
// are the same quantity there. Use Occupied for the number of written slots.
// A destroyed store reports 0.
func (s *Store) Count() int {
	if s.destroyed {
		return 0
	}
	if s.mode == Array {
		return s.capacity
	}
	return s.count
}

// Set stores a copy of v under name.
//
// An existing entry with the same name is replaced in place: the new entry
// keeps the old one's chain position and Count is unchanged. Otherwise the
// entry becomes the head of its bucket chain and Count grows by one.
func (s *Store) Set(name string, v value.Value) error {
	if err := s.require(Hashed, "set"); err != nil {
		s.metrics.RecordSet(false, err)
		return err
	}

	replaced := s.set(name, v.Clone())
	s.metrics.RecordSet(replaced, nil)
	s.logger.LogSet(name, v.Type(), v.Len(), replaced)
	return nil
}

// SetData stores count elements of type typ decoded from the little-endian
// buffer data (see value.FromBytes). A nil data zero-fills the attribute;
// typ == value.Byte with count == value.StringCount stores data up to and
// including its first NUL.
func (s *Store) SetData(name string, typ value.Type, count int, data []byte) error {
	if err := s.require(Hashed, "set"); err != nil {
		s.metrics.RecordSet(false, err)
		return err
	}

	v, err := value.FromBytes(typ, count, data)
	if err != nil {
		err = invalidInput(err)
		s.metrics.RecordSet(false, err)
		s.logger.LogViolation("set", err)
		return err
	}

	replaced := s.set(name, v)
	s.metrics.RecordSet(replaced, nil)
	s.logger.LogSet(name, typ, v.Len(), replaced)
	return nil
}

// set links an owned value into its bucket chain and reports whether an
// existing entry was replaced.
func (s *Store) set(name string, v value.Value) bool {
	b := hash.Bucket(name, s.capacity)
	chain := s.buckets[b]
	for i := range chain {
		if chain[i].Name == name {
			chain[i] = Entry{Name: name, Value: v}
			return true
		}
	}

	s.buckets[b] = slices.Insert(chain, 0, Entry{Name: name, Value: v})
	s.live.Set(uint(b))
	s.count++
	return false
}

// Get returns the entry stored under name.
//
// Absence is reported by the boolean, never by an error. On an Array store,
// Get returns the lowest-index slot holding name.
func (s *Store) Get(name string) (Entry, bool) {
	e, ok := s.lookup(name)
	s.metrics.RecordGet(ok)
	return e, ok
}

func (s *Store) lookup(name string) (Entry, bool) {
	if s.destroyed {
		return Entry{}, false
	}

	if s.mode == Array {
		for _, e := range s.slots {
			if e != nil && e.Name == name {
				return *e, true
			}
		}
		return Entry{}, false
	}

	if s.count == 0 {
		return Entry{}, false
	}
	for _, e := range s.buckets[hash.Bucket(name, s.capacity)] {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Unset removes the entry stored under name. Unsetting an absent name is a no-op.
func (s *Store) Unset(name string) error {
	if err := s.require(Hashed, "unset"); err != nil {
		return err
	}

	found := s.unset(name)
	s.metrics.RecordUnset(found)
	s.logger.LogUnset(name, found)
	return nil
}

func (s *Store) unset(name string) bool {
	if s.count == 0 {
		return false
	}

	b := hash.Bucket(name, s.capacity)
	chain := s.buckets[b]
	for i := range chain {
		if chain[i].Name == name {
			s.buckets[b] = slices.Delete(chain, i, i+1)
			if len(s.buckets[b]) == 0 {
				s.live.Clear(uint(b))
			}
			s.count--
			return true
		}
	}
	return false
}

// RemoveAll releases every entry.
//
// A Hashed store ends with Count 0. An Array store keeps its slot count and
// every slot becomes empty.
func (s *Store) RemoveAll() {
	if s.destroyed {
		return
	}

	var removed int
	if s.mode == Array {
		removed = int(s.occupied.GetCardinality())
		clear(s.slots)
		s.occupied.Clear()
	} else {
		removed = s.removeChains()
	}

	s.metrics.RecordRemoveAll(removed)
	s.logger.LogRemoveAll(removed)
}

func (s *Store) removeChains() int {
	if s.count == 0 {
		return 0
	}

	n := 0
	for b, ok := s.live.NextSet(0); ok; b, ok = s.live.NextSet(b + 1) {
		n += len(s.buckets[b])
		s.buckets[b] = nil
	}
	s.live.ClearAll()
	s.count = 0
	return n
}

// Destroy releases every entry and the bucket array.
//
// Afterwards Count reports 0, lookups report absence and mutations return
// ErrDestroyed. Destroy is idempotent.
func (s *Store) Destroy() {
	if s == nil || s.destroyed {
		return
	}
	s.RemoveAll()
	s.buckets = nil
	s.live = nil
	s.slots = nil
	s.occupied = nil
	s.destroyed = true
	s.logger.Debug("store destroyed")
}

// Names returns the attribute names in enumeration order.
func (s *Store) Names() []string {
	var names []string
	s.ForEach(func(_ int, e Entry) bool {
		names = append(names, e.Name)
		return true
	})
	return names
}

// require checks that the store is alive and in the given mode.
func (s *Store) require(mode Mode, op string) error {
	var err error
	switch {
	case s.destroyed:
		err = ErrDestroyed
	case s.mode != mode:
		err = fmt.Errorf("%w: %s requires a %s store, have %s", ErrWrongMode, op, mode, s.mode)
	default:
		return nil
	}
	s.logger.LogViolation(op, err)
	return err
}
