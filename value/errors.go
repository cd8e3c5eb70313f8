package value

import "errors"

var (
	// ErrInvalidType indicates an element type outside the closed set.
	ErrInvalidType = errors.New("value: invalid element type")

	// ErrInvalidCount indicates a negative element count.
	ErrInvalidCount = errors.New("value: invalid element count")

	// ErrShortData indicates a raw buffer smaller than count * element size.
	ErrShortData = errors.New("value: data shorter than element count")

	// ErrUnterminated indicates a string-sentinel buffer without a NUL byte.
	ErrUnterminated = errors.New("value: string data is not NUL-terminated")

	// ErrStringType indicates string input for a non-Byte element type.
	ErrStringType = errors.New("value: string data requires byte element type")

	// ErrUnsupported indicates dynamic input that cannot be converted.
	ErrUnsupported = errors.New("value: unsupported input")
)
