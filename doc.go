// Package attrib provides an embeddable store of named, typed attributes.
//
// An attribute is a name plus a typed, variable-length array of elements
// (see package value): image dimensions, resolutions, codec parameters and
// similar metadata attached to a host object.
//
// # Quick Start
//
//	store, _ := attrib.NewTable(0) // 101 buckets
//	_ = store.Set("Width", value.Ints([]int32{640}))
//	_ = store.SetAsString("Description", "scanned page")
//
//	w := store.GetAsInteger("Width", 0)          // 640
//	desc, ok := store.GetAsString("Description") // "scanned page", true
//
// # Store Modes
//
// Hashed stores map unique names to entries through a fixed number of hash
// buckets. There is no rehashing: the bucket count chosen at creation is
// kept for the life of the store.
//
// Array stores have a fixed number of positional slots. Names are carried
// along but not unique; identity is the slot index:
//
//	arr, _ := attrib.NewArray(3)
//	_ = arr.ArraySet(0, "a", value.Bytes([]byte{'A'}))
//	_, ok, _ := arr.ArrayGet(1) // ok == false: never written
//
// # Typed Accessors
//
// GetAsInteger and GetAsReal read one element with numeric coercion and
// return 0 for absent names, out-of-range indexes and complex elements.
// SetAsInteger, SetAsReal and SetAsString write single-element and string
// attributes. Complex element types are rejected by the scalar setters with
// ErrUnsupportedConversion.
//
// # Copy and Merge
//
//	attrib.CopyAllInto(dst, src) // overwrite same-named entries
//	attrib.MergeInto(dst, src)   // only fill names dst lacks
//	attrib.CopyAllIntoArray(arr, src)
//
// # Errors
//
// Misuse (an out-of-range slot index, a Hashed-only operation on an Array
// store, malformed raw data) always returns an error wrapping
// ErrContractViolation; nothing panics. Absence is never an error: lookups
// report it with a boolean.
//
// # Concurrency
//
// A Store is owned by a single goroutine. It performs no locking and no I/O.
package attrib
