package codec

import (
	"errors"
	"fmt"
)

// MalformedRecordError is returned when a record in an observation file
// does not conform to the expected grammar. A single malformed record
// invalidates the whole read.
type MalformedRecordError struct {
	// Format is the codec name ("ert" or "yaml").
	Format string

	// Line is the 1-based line number for line-oriented formats, or 0
	// when the position is not line-addressable.
	Line int

	// Record is the offending input fragment.
	Record string

	// Reason describes what failed to parse.
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s observations: malformed record at line %d: %s (%q)",
			e.Format, e.Line, e.Reason, e.Record)
	}
	return fmt.Sprintf("%s observations: malformed record: %s (%q)", e.Format, e.Reason, e.Record)
}

// IsMalformedRecord reports whether err is a MalformedRecordError.
// Uses errors.As to handle wrapped errors.
func IsMalformedRecord(err error) bool {
	var me *MalformedRecordError
	return errors.As(err, &me)
}
