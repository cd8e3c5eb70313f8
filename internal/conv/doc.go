// Package conv provides the numeric conversions used by attribute accessors.
//
// Two kinds live here:
//
//   - IntToUint32 returns an error instead of silently wrapping. It guards slot
//     indices handed to the occupancy bitmap.
//   - Saturating float narrowing (FloatToUint8, FloatToInt16, FloatToUint16,
//     FloatToInt32) truncates toward zero and clamps to the target range.
//     NaN converts to zero. Go leaves out-of-range float-to-integer
//     conversions implementation-defined, so every narrowing goes through here.
//
// Integer-to-integer narrowing is not wrapped: Go defines it as two's-complement
// truncation, which is the behavior attributes expect.
package conv
