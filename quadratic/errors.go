package quadratic

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned by the batch functions when the
	// destination and coefficient slices differ in length.
	ErrLengthMismatch = errors.New("quadratic: slice lengths differ")

	// ErrUnknownMode is returned by ParseMode for an unrecognised name.
	ErrUnknownMode = errors.New("quadratic: unknown mode")
)

func validateLengths(n int, slices ...[]float64) error {
	for i, s := range slices {
		if len(s) != n {
			return fmt.Errorf("%w: argument %d has length %d, want %d", ErrLengthMismatch, i+1, len(s), n)
		}
	}

	return nil
}
