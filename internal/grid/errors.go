package grid

import (
	"errors"
	"fmt"
)

// MalformedReason categorizes grid construction failures.
type MalformedReason string

const (
	// ReasonEmpty indicates a grid with no rows.
	ReasonEmpty MalformedReason = "EMPTY_GRID"

	// ReasonEmptyRow indicates a row with no letters.
	ReasonEmptyRow MalformedReason = "EMPTY_ROW"

	// ReasonRaggedRow indicates rows of unequal length.
	ReasonRaggedRow MalformedReason = "RAGGED_ROW"

	// ReasonBadLetter indicates a field that is not exactly one letter.
	ReasonBadLetter MalformedReason = "BAD_LETTER"
)

// MalformedGridError reports a grid that cannot be built.
//
// Row and Col locate the offending input (zero-based); -1 means not
// applicable.
type MalformedGridError struct {
	Reason MalformedReason
	Row    int
	Col    int
	Detail string
}

// Error implements the error interface.
func (e *MalformedGridError) Error() string {
	msg := fmt.Sprintf("malformed grid: %s", e.Reason)
	if e.Row >= 0 {
		msg += fmt.Sprintf(" (row %d", e.Row+1)
		if e.Col >= 0 {
			msg += fmt.Sprintf(", col %d", e.Col+1)
		}
		msg += ")"
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// IsMalformed reports whether err is a MalformedGridError.
// Uses errors.As to handle wrapped errors.
func IsMalformed(err error) bool {
	var me *MalformedGridError
	return errors.As(err, &me)
}
