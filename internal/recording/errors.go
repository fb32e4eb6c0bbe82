package recording

import (
	"errors"
	"fmt"
)

// ErrBase64 indicates the recording line is not valid base64.
var ErrBase64 = errors.New("invalid base64")

// FormatError reports a malformed binary recording.
type FormatError struct {
	Offset int
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("recording format error at byte %d: %s: %v", e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("recording format error at byte %d: %s", e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func newFormatError(offset int, format string, args ...any) *FormatError {
	return &FormatError{
		Offset: offset,
		Reason: fmt.Sprintf(format, args...),
	}
}
