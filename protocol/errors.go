package protocol

import (
	"errors"
	"fmt"
)

// ErrCommandLength is returned by ParseCommand for slices that are not CommandSize bytes.
var ErrCommandLength = errors.New("invalid command length")

// RangeError reports a field value rejected by the range guard.
// Start and End are the bounds the caller declared for the field.
type RangeError struct {
	Start uint16
	End   uint16
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range: value must be within %d-%d", e.Start, e.End)
}

// IsRangeError returns true if err is, or wraps, a RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
