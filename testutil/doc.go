// Package testutil provides testing utilities for attribute stores.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random attribute names and values so store
// invariants can be checked over many inputs.
//
// # Random Attributes
//
//	rng := testutil.NewRNG(seed)
//	name := rng.Name(8)                 // random ASCII identifier
//	v := rng.Value(value.Double, 4)     // four random doubles
//	attrs := rng.Attributes(100, 16)    // 100 uniquely named attributes
package testutil
