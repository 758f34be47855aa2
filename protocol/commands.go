package protocol

import (
	"encoding/binary"
	"fmt"
)

// Encode serializes cmd into a CommandSize-byte command block.
//
// Block structure (all multi-byte fields big-endian):
//
//	[CMD(2)][ADDR(4)][FORMAT(1)][COUNT(4)][DATA(4)][RSVD(1)]
func Encode(cmd Command) []byte {
	block := make([]byte, CommandSize)
	binary.BigEndian.PutUint16(block[0:2], uint16(cmd.Kind))
	binary.BigEndian.PutUint32(block[2:6], cmd.Address)
	block[6] = cmd.Format
	binary.BigEndian.PutUint32(block[7:11], cmd.Count)
	binary.BigEndian.PutUint32(block[11:15], cmd.Data)
	return block
}

// BuildReadRegisterCmd constructs a Read Register command block.
// The count is the number of bytes to read starting at addr.
//
// Example:
//
//	block, err := protocol.BuildReadRegisterCmd(0x020E0000, 4)
func BuildReadRegisterCmd(addr, count uint32) ([]byte, error) {
	if count == 0 {
		return nil, fmt.Errorf("count cannot be zero")
	}

	return Encode(Command{
		Kind:    KindReadRegister,
		Address: addr,
		Format:  Format32,
		Count:   count,
	}), nil
}

// BuildWriteRegisterCmd constructs a Write Register command block.
// The format selects the access width and must be Format8, Format16 or Format32.
func BuildWriteRegisterCmd(addr uint32, format byte, value uint32) ([]byte, error) {
	switch format {
	case Format8, Format16, Format32:
	default:
		return nil, fmt.Errorf("invalid register format 0x%02X", format)
	}

	return Encode(Command{
		Kind:    KindWriteRegister,
		Address: addr,
		Format:  format,
		Data:    value,
	}), nil
}

// BuildWriteFileCmd constructs a Write File command block announcing count
// bytes of data phases destined for addr.
//
// Example:
//
//	block, err := protocol.BuildWriteFileCmd(0x00910000, uint32(len(image)))
func BuildWriteFileCmd(addr, count uint32) ([]byte, error) {
	if count == 0 {
		return nil, fmt.Errorf("count cannot be zero")
	}

	return Encode(Command{
		Kind:    KindWriteFile,
		Address: addr,
		Count:   count,
	}), nil
}

// BuildWriteDCDCmd constructs a Write DCD command block announcing a
// count-byte DCD table destined for addr.
func BuildWriteDCDCmd(addr, count uint32) ([]byte, error) {
	if count == 0 {
		return nil, fmt.Errorf("count cannot be zero")
	}

	return Encode(Command{
		Kind:    KindWriteDCD,
		Address: addr,
		Count:   count,
	}), nil
}

// BuildJumpAddressCmd constructs a Jump Address command block.
// The addr is the location of the image vector table.
func BuildJumpAddressCmd(addr uint32) ([]byte, error) {
	return Encode(Command{
		Kind:    KindJumpAddress,
		Address: addr,
	}), nil
}

// BuildErrorStatusCmd constructs an Error Status command block.
func BuildErrorStatusCmd() ([]byte, error) {
	return Encode(Command{Kind: KindErrorStatus}), nil
}

// BuildSkipDCDHeaderCmd constructs a Skip DCD Header command block.
func BuildSkipDCDHeaderCmd() ([]byte, error) {
	return Encode(Command{Kind: KindSkipDCDHeader}), nil
}
