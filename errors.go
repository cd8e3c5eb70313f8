package attrib

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is wrapped by every error caused by misuse of the
	// store API. Test for it with errors.Is.
	ErrContractViolation = errors.New("attrib: contract violation")

	// ErrInvalidCapacity is returned when a store is created with a negative capacity.
	ErrInvalidCapacity = fmt.Errorf("%w: invalid capacity", ErrContractViolation)

	// ErrWrongMode is returned when an operation is used on a store of the other mode.
	ErrWrongMode = fmt.Errorf("%w: wrong store mode", ErrContractViolation)

	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrContractViolation)

	// ErrCapacityExceeded is returned when an array store cannot hold every source entry.
	ErrCapacityExceeded = fmt.Errorf("%w: capacity exceeded", ErrContractViolation)

	// ErrDestroyed is returned when a destroyed store is mutated.
	ErrDestroyed = fmt.Errorf("%w: store destroyed", ErrContractViolation)

	// ErrUnsupportedConversion is returned by SetAsInteger and SetAsReal for
	// complex element types. The store is left unchanged.
	ErrUnsupportedConversion = errors.New("attrib: unsupported conversion")
)

// IndexError reports an array slot index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("attrib: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// invalidInput wraps a value construction error as a contract violation.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %w", ErrContractViolation, err)
}
