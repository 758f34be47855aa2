package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated = errors.New("protocol: truncated data")
)

// StatusError reports a status word that differs from the one the
// operation expects.
type StatusError struct {
	// Operation is the command that failed
	Operation string

	// Expected is the status word a successful device returns
	Expected uint32

	// Actual is the status word the device returned
	Actual uint32
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%08X, expected 0x%08X)",
		e.Operation, getStatusName(e.Actual), e.Actual, e.Expected)
}

// IsStatusError returns true if err is or wraps a StatusError.
func IsStatusError(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

// getStatusName returns a human-readable name for a status word.
func getStatusName(status uint32) string {
	switch status {
	case StatusWriteFileComplete:
		return "write file complete"
	case StatusWriteDCDComplete:
		return "write dcd complete"
	case uint32(HABModeOpen):
		return "hab open"
	case uint32(HABModeClosed):
		return "hab closed"
	default:
		return "unexpected status"
	}
}
