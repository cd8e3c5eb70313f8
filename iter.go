package attrib

import (
	"iter"
)

// ForEach calls fn for every entry until fn returns false.
//
// index counts visited entries from 0. Hashed stores are visited in bucket
// order and, within a bucket, most recently inserted first; Array stores in
// slot order, skipping empty slots. The order is deterministic but unrelated
// to names, so callers should treat it as unordered.
//
// fn may replace entries of the store being visited, but must not insert or
// remove them.
func (s *Store) ForEach(fn func(index int, e Entry) bool) {
	if s.destroyed {
		return
	}
	if s.mode == Array {
		s.forEachSlot(fn)
		return
	}
	if s.count == 0 {
		return
	}

	index := 0
	for b, ok := s.live.NextSet(0); ok; b, ok = s.live.NextSet(b + 1) {
		for _, e := range s.buckets[b] {
			if !fn(index, e) {
				return
			}
			index++
		}
	}
}

func (s *Store) forEachSlot(fn func(index int, e Entry) bool) {
	// Snapshot the positions so fn may rewrite slots while we walk them.
	positions := s.occupied.ToArray()
	index := 0
	for _, pos := range positions {
		e := s.slots[pos]
		if e == nil {
			continue
		}
		if !fn(index, *e) {
			return
		}
		index++
	}
}

// All returns an iterator over (index, entry) pairs in ForEach order.
// The sequence can be ranged over any number of times.
//
//	for i, e := range store.All() {
//	    fmt.Println(i, e.Name, e.Value)
//	}
func (s *Store) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		s.ForEach(yield)
	}
}
