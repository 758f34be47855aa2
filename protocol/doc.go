// Package protocol implements the i.MX Serial Download Protocol (SDP) wire format.
//
// This package provides functions to build and decode the 16-byte command
// blocks and to parse the fixed status words the boot ROM returns.
//
// # Protocol Overview
//
// An SDP exchange for one command is split into phases, each carried by a
// different HID report:
//
//	Report 1 (Command):  [CMD(2)][ADDR(4)][FORMAT(1)][COUNT(4)][DATA(4)][RSVD(1)]
//	Report 2 (Data):     write payload, COUNT bytes in total
//	Report 3 (Security): [HAB_MODE(4)]
//	Report 4 (Status):   [STATUS(4)] or the bytes of a register read
//
// All multi-byte fields are big-endian.
//
// # Command Builders
//
// Use the Build* functions to create command blocks:
//
//	block, err := protocol.BuildWriteFileCmd(addr, uint32(len(image)))
//	block, err := protocol.BuildReadRegisterCmd(addr, 4)
//	// ... etc
//
// # Decoding
//
// A Decoder recovers the Command from a command phase payload.
// DefaultDecoder handles the standard block; tests may inject their own:
//
//	cmd, n, err := protocol.DefaultDecoder.Decode(block)
//
// # Status Words
//
// Write File and Write DCD complete with fixed status words. Use
// CheckStatus to compare a response with the expected word:
//
//	if err := protocol.CheckStatus("write file", rsp, protocol.StatusWriteFileComplete); err != nil {
//	    // err is a *StatusError
//	}
package protocol
