package attrib

import "fmt"

// CopyAllInto sets every entry of src into dst, in src enumeration order.
//
// Values are deep-copied. Same-named dst entries are overwritten and dst-only
// entries are left untouched. dst must be a Hashed store; src may be either mode.
func CopyAllInto(dst, src *Store) error {
	if err := dst.require(Hashed, "copy_all_into"); err != nil {
		return err
	}

	var err error
	src.ForEach(func(_ int, e Entry) bool {
		err = dst.Set(e.Name, e.Value)
		return err == nil
	})
	return err
}

// MergeInto sets the entries of src whose names are absent from dst.
// Entries present in both keep the dst value.
func MergeInto(dst, src *Store) error {
	if err := dst.require(Hashed, "merge_into"); err != nil {
		return err
	}

	var err error
	src.ForEach(func(_ int, e Entry) bool {
		if _, ok := dst.lookup(e.Name); ok {
			return true
		}
		err = dst.Set(e.Name, e.Value)
		return err == nil
	})
	return err
}

// CopyAllIntoArray writes the k-th entry of src enumeration into slot k of dst.
//
// dst must be an Array store with at least as many slots as src has entries;
// this is checked before any slot is written.
func CopyAllIntoArray(dst, src *Store) error {
	if err := dst.require(Array, "copy_all_into_array"); err != nil {
		return err
	}
	if n := src.Occupied(); n > dst.capacity {
		err := fmt.Errorf("%w: %d entries into %d slots", ErrCapacityExceeded, n, dst.capacity)
		dst.logger.LogViolation("copy_all_into_array", err)
		return err
	}

	var err error
	src.ForEach(func(index int, e Entry) bool {
		err = dst.ArraySet(index, e.Name, e.Value)
		return err == nil
	})
	return err
}
