package protocol

// ProtocolVersion names the SDP dialect implemented by this library.
const ProtocolVersion = "i.MX SDP (HID reports 1-4)"

// Command block layout.
const (
	// CommandSize is the size of an SDP command block in bytes:
	// CMD(2) + ADDR(4) + FORMAT(1) + COUNT(4) + DATA(4) + RSVD(1)
	CommandSize = 16

	// StatusSize is the size of every fixed status/sentinel response in bytes
	StatusSize = 4
)

// Command codes. Both bytes of each code are equal so the value reads the
// same in either byte order; the wire form is still big-endian.
const (
	// CmdReadRegister reads COUNT bytes starting at ADDR
	CmdReadRegister = 0x0101

	// CmdWriteRegister writes DATA to the register at ADDR
	CmdWriteRegister = 0x0202

	// CmdWriteFile downloads COUNT bytes to memory at ADDR
	CmdWriteFile = 0x0404

	// CmdErrorStatus queries the last error status
	CmdErrorStatus = 0x0505

	// CmdWriteDCD downloads a COUNT-byte device configuration data table to ADDR
	CmdWriteDCD = 0x0A0A

	// CmdJumpAddress jumps to the image vector table at ADDR
	CmdJumpAddress = 0x0B0B

	// CmdSkipDCDHeader asks the boot ROM to skip the DCD in the next image
	CmdSkipDCDHeader = 0x0D0D
)

// Register access widths carried in the FORMAT byte.
const (
	Format8  = 0x08
	Format16 = 0x10
	Format32 = 0x20
)

// Fixed big-endian status words returned by the device.
const (
	// StatusWriteFileComplete follows a successful Write File data transfer
	StatusWriteFileComplete = 0x88888888

	// StatusWriteDCDComplete follows a successful Write DCD data transfer
	StatusWriteDCDComplete = 0x128A8A12
)

// DefaultChunkSize is the data phase payload size used by the host client.
// Matches the 1024-byte HID report 2 payload of the boot ROM.
const DefaultChunkSize = 1024
