package protocol

import "fmt"

// Phase selects one step of an SDP exchange. The values are the HID report
// IDs the boot ROM uses for each step.
type Phase uint8

const (
	// PhaseCommand carries a 16-byte command block (report 1)
	PhaseCommand Phase = 1

	// PhaseData carries write payload for Write File / Write DCD (report 2)
	PhaseData Phase = 2

	// PhaseSecurityQuery returns the HAB security configuration (report 3)
	PhaseSecurityQuery Phase = 3

	// PhaseStatus returns the command status or read data (report 4)
	PhaseStatus Phase = 4
)

func (p Phase) String() string {
	switch p {
	case PhaseCommand:
		return "command"
	case PhaseData:
		return "data"
	case PhaseSecurityQuery:
		return "security"
	case PhaseStatus:
		return "status"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Kind is the operation requested by a command block. Its value is the
// wire command code; codes this package does not name decode unchanged and
// are treated as inert by the simulator.
type Kind uint16

const (
	KindReadRegister  Kind = CmdReadRegister
	KindWriteRegister Kind = CmdWriteRegister
	KindWriteFile     Kind = CmdWriteFile
	KindErrorStatus   Kind = CmdErrorStatus
	KindWriteDCD      Kind = CmdWriteDCD
	KindJumpAddress   Kind = CmdJumpAddress
	KindSkipDCDHeader Kind = CmdSkipDCDHeader
)

func (k Kind) String() string {
	switch k {
	case KindReadRegister:
		return "read_register"
	case KindWriteRegister:
		return "write_register"
	case KindWriteFile:
		return "write_file"
	case KindErrorStatus:
		return "error_status"
	case KindWriteDCD:
		return "write_dcd"
	case KindJumpAddress:
		return "jump_address"
	case KindSkipDCDHeader:
		return "skip_dcd_header"
	default:
		return fmt.Sprintf("cmd(0x%04X)", uint16(k))
	}
}

// IsWrite reports whether the command is followed by data phases.
func (k Kind) IsWrite() bool {
	return k == KindWriteFile || k == KindWriteDCD
}

// Command is a decoded SDP command block.
type Command struct {
	// Kind is the requested operation
	Kind Kind

	// Address is the target device address
	Address uint32

	// Format is the register access width (Format8/16/32), zero for transfers
	Format byte

	// Count is the number of bytes to transfer
	Count uint32

	// Data is the register value for Write Register, or the file type for Write File
	Data uint32
}

// HABMode is the High Assurance Boot configuration reported in the
// security query phase.
type HABMode uint32

const (
	// HABModeOpen reports an open (development) part
	HABModeOpen HABMode = 0x56787856

	// HABModeClosed reports a closed (secure) part
	HABModeClosed HABMode = 0x12343412
)

func (m HABMode) String() string {
	switch m {
	case HABModeOpen:
		return "open"
	case HABModeClosed:
		return "closed"
	default:
		return fmt.Sprintf("unknown(0x%08X)", uint32(m))
	}
}

// Result is the non-error outcome of a phase call.
type Result int

const (
	// ResultOK means the phase completed; any response bytes are in the buffer.
	ResultOK Result = iota

	// ResultNoResponse means the device accepted a jump and sends no status.
	ResultNoResponse
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultNoResponse:
		return "no_response"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}
