package binding

import "errors"

var (
	// ErrMalformed indicates a document record that does not describe a valid attribute.
	ErrMalformed = errors.New("binding: malformed record")

	// ErrTooManyRecords indicates a document with more records than an array store has slots.
	ErrTooManyRecords = errors.New("binding: more records than array slots")
)
