package coordinator

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput indicates the input held no text.
	ErrEmptyInput = errors.New("input empty")
	// ErrTooFewRecordings indicates fewer than MinRecordings non-empty lines.
	ErrTooFewRecordings = fmt.Errorf("requires %d or more entries", MinRecordings)
)

// DecodeError reports a line that could not be decoded. Its message is
// generic; the cause is available through Unwrap for diagnostics.
type DecodeError struct {
	// Line is the 1-based index among non-empty input lines.
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return "failed to parse input as list of base64 recordings"
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Detail describes the failing line and its cause.
func (e *DecodeError) Detail() string {
	return fmt.Sprintf("recording %d: %v", e.Line, e.Err)
}
