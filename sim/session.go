package sim

import (
	"fmt"

	"github.com/moffa90/go-imxsdp/protocol"
)

// State is the position of a simulator in the phase grammar.
type State int

const (
	// StateIdle means no command has been accepted since creation or release.
	StateIdle State = iota

	// StateAwaitingData means a Write File or Write DCD command was accepted
	// and data phases may follow.
	StateAwaitingData

	// StateAwaitingStatus means a non-write command was accepted and only a
	// status phase is meaningful.
	StateAwaitingStatus
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingData:
		return "awaiting_data"
	case StateAwaitingStatus:
		return "awaiting_status"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// session is the context carried between phase calls of one command.
type session struct {
	state    State
	pending  []byte
	selected *Region
}

// begin records an accepted command. The raw block is copied so the caller
// may reuse its buffer.
func (s *session) begin(raw []byte, kind protocol.Kind, selected *Region) {
	s.pending = append(s.pending[:0], raw...)
	s.selected = selected
	if kind.IsWrite() {
		s.state = StateAwaitingData
	} else {
		s.state = StateAwaitingStatus
	}
}

// release drops the region reference. The state and pending block stay so
// a status phase still resolves the command against the registry.
func (s *session) release() {
	s.selected = nil
}
