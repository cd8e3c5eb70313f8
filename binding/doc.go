// Package binding adapts attribute stores to hosts that work with untyped
// data, such as scripting layers and JSON APIs.
//
// Values cross the boundary as plain Go values (any): strings, numbers,
// slices of numbers and [2]float64 pairs for complex elements. Conversion
// into the typed element buffers is done by value.FromAny.
//
// Marshal and Unmarshal exchange whole attribute lists through a
// codec.Codec (JSON by default; YAML and CBOR are also available):
//
//	data, _ := binding.Marshal(store, codec.Default)
//	_ = binding.Unmarshal(data, codec.Default, other)
//
// The document is an ordered list of records, shown here as JSON:
//
//	[{"name":"Dimensions","type":"int","count":2,"data":[640,480]}]
//
// Complex elements are flattened into (real, imaginary) pairs. In JSON,
// non-finite components are written as "NaN", "+Inf" and "-Inf".
package binding
