package resample

import (
	"errors"
	"fmt"
)

// ErrEmptySchedule is returned when anchor derivation is attempted against
// a schedule with zero events.
var ErrEmptySchedule = errors.New("schedule has no events")

// UnsupportedPolicyError is returned for a resampling policy outside the
// defined set (none, monthly, quarterly, annual).
type UnsupportedPolicyError struct {
	Policy string
}

// Error implements the error interface.
func (e *UnsupportedPolicyError) Error() string {
	return fmt.Sprintf("unsupported resampling policy %q", e.Policy)
}

// IsUnsupportedPolicy reports whether err is an UnsupportedPolicyError.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedPolicy(err error) bool {
	var pe *UnsupportedPolicyError
	return errors.As(err, &pe)
}
