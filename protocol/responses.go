package protocol

import (
	"encoding/binary"
	"fmt"
)

// PutStatus writes a big-endian status word into the first StatusSize
// bytes of p.
func PutStatus(p []byte, status uint32) error {
	if len(p) < StatusSize {
		return fmt.Errorf("status buffer too short: got %d bytes, need %d", len(p), StatusSize)
	}

	binary.BigEndian.PutUint32(p[:StatusSize], status)
	return nil
}

// ParseStatus extracts the big-endian status word from a status phase
// response.
func ParseStatus(data []byte) (uint32, error) {
	if len(data) < StatusSize {
		return 0, fmt.Errorf("invalid data length for status response: got %d bytes, expected %d", len(data), StatusSize)
	}

	return binary.BigEndian.Uint32(data[:StatusSize]), nil
}

// ParseHABMode parses the security query phase response.
//
// Data format (4 bytes, big-endian):
//
//	[HAB_MODE(4)]
func ParseHABMode(data []byte) (HABMode, error) {
	status, err := ParseStatus(data)
	if err != nil {
		return 0, err
	}

	mode := HABMode(status)
	switch mode {
	case HABModeOpen, HABModeClosed:
		return mode, nil
	default:
		return mode, fmt.Errorf("unrecognized HAB mode 0x%08X", status)
	}
}

// CheckStatus parses a status response and compares it with expected.
// A mismatch is reported as a *StatusError naming operation.
func CheckStatus(operation string, data []byte, expected uint32) error {
	status, err := ParseStatus(data)
	if err != nil {
		return err
	}

	if status != expected {
		return &StatusError{
			Operation: operation,
			Expected:  expected,
			Actual:    status,
		}
	}

	return nil
}
