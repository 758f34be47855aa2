package host

import "time"

// Progress phases.
const (
	PhaseCommand  = "command"
	PhaseData     = "data"
	PhaseStatus   = "status"
	PhaseComplete = "complete"
)

// Progress contains information about a transfer in flight.
// Passed to ProgressCallback during Write File and Write DCD.
type Progress struct {
	// Operation is the command being run, e.g. "write file"
	Operation string

	// Phase describes the current step:
	//   "command"  - Command block sent
	//   "data"     - Data phases in progress
	//   "status"   - Waiting for the completion status
	//   "complete" - Operation completed successfully
	Phase string

	// BytesWritten is the number of payload bytes sent so far
	BytesWritten int

	// TotalBytes is the payload size announced in the command block
	TotalBytes int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the operation started
	ElapsedTime time.Duration
}

// ProgressCallback is called periodically during transfers to report progress.
// Implementations should return quickly to avoid blocking the transfer.
type ProgressCallback func(Progress)
