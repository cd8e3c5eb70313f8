package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// FloatToUint8 truncates f toward zero and clamps it to [0, 255].
func FloatToUint8(f float64) uint8 {
	return uint8(clamp(f, 0, math.MaxUint8))
}

// FloatToInt16 truncates f toward zero and clamps it to the int16 range.
func FloatToInt16(f float64) int16 {
	return int16(clamp(f, math.MinInt16, math.MaxInt16))
}

// FloatToUint16 truncates f toward zero and clamps it to [0, 65535].
func FloatToUint16(f float64) uint16 {
	return uint16(clamp(f, 0, math.MaxUint16))
}

// FloatToInt32 truncates f toward zero and clamps it to the int32 range.
func FloatToInt32(f float64) int32 {
	return int32(clamp(f, math.MinInt32, math.MaxInt32))
}

// clamp truncates f and bounds it to [lo, hi]. NaN maps to 0.
func clamp(f, lo, hi float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
