package hash

const (
	// multiplier is the per-byte multiplier of the name hash.
	multiplier = 31
)

// Name computes the 16-bit hash of an attribute name.
//
// Algorithm: hash = 0; for each byte: hash = hash * 31 + byte (wrapping at 16 bits).
func Name(name string) uint16 {
	var h uint16
	for i := 0; i < len(name); i++ {
		h = h*multiplier + uint16(name[i])
	}
	return h
}

// Bucket returns the bucket index of name in a table with bucketCount buckets.
// bucketCount must be positive.
func Bucket(name string, bucketCount int) int {
	return int(Name(name)) % bucketCount
}
