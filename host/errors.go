package host

import (
	"errors"
	"fmt"

	"github.com/moffa90/go-imxsdp/protocol"
)

// ErrJumpNotAcknowledged is returned when a jump is answered with a status
// instead of silence.
var ErrJumpNotAcknowledged = errors.New("host: device answered jump with a status")

// PhaseError records the operation and phase in which the device rejected
// a transfer.
type PhaseError struct {
	Operation string
	Phase     protocol.Phase
	Err       error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s phase: %v", e.Operation, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error { return e.Err }

// SecurityError indicates the device reported a HAB mode the client does
// not recognize.
type SecurityError struct {
	Mode protocol.HABMode
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("unrecognized security configuration 0x%08X", uint32(e.Mode))
}
