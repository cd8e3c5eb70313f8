// Package hash maps attribute names to hash buckets.
//
// The hash is a 16-bit multiplicative string hash over the raw name bytes:
//
//	h = 0
//	for each byte c: h = h*31 + c   (mod 2^16)
//	bucket = h % bucketCount
//
// The result depends only on the name and the bucket count, so two stores with
// the same bucket count always place a name in the same bucket. Enumeration
// order of a store follows bucket order, which makes it deterministic but
// unrelated to name order.
package hash
