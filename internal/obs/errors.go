package obs

import (
	"errors"
	"fmt"
)

// ErrEmptyAnchorSequence is returned when a partition is requested over
// zero anchor dates.
var ErrEmptyAnchorSequence = errors.New("anchor date sequence is empty")

// InvalidFractionError is returned for a training fraction outside (0, 1].
type InvalidFractionError struct {
	Fraction float64
}

// Error implements the error interface.
func (e *InvalidFractionError) Error() string {
	return fmt.Sprintf("training fraction %v outside (0, 1]", e.Fraction)
}

// IsInvalidFraction reports whether err is an InvalidFractionError.
// Uses errors.As to handle wrapped errors.
func IsInvalidFraction(err error) bool {
	var fe *InvalidFractionError
	return errors.As(err, &fe)
}
