package sim

import (
	"errors"
	"fmt"
)

var (
	ErrNoDecoder        = errors.New("sim: no command decoder configured")
	ErrUnmappedAddress  = errors.New("sim: address not backed by any region")
	ErrOutOfRangeRead   = errors.New("sim: read crosses region boundary")
	ErrNoSelectedRegion = errors.New("sim: data phase without a pending write")
	ErrRegionOverflow   = errors.New("sim: data exceeds declared region length")
	ErrShortBuffer      = errors.New("sim: buffer too short")
	ErrNoActiveSession  = errors.New("sim: status phase without a command")
)

// AddressError reports a read of an address no region contains.
type AddressError struct {
	Addr uint32
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address 0x%08X is not mapped", e.Addr)
}

func (e *AddressError) Unwrap() error { return ErrUnmappedAddress }

// RangeError reports a read that starts inside a region but runs past its end.
type RangeError struct {
	Addr  uint32
	Count uint32
	Base  uint32
	Len   uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at 0x%08X leaves region 0x%08X+%d",
		e.Count, e.Addr, e.Base, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRangeRead }

// OverflowError reports a data phase that would write past a region's
// declared length.
type OverflowError struct {
	Base   uint32
	Len    uint32
	Cursor uint32
	Count  uint32
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("write of %d bytes at offset %d overflows region 0x%08X+%d",
		e.Count, e.Cursor, e.Base, e.Len)
}

func (e *OverflowError) Unwrap() error { return ErrRegionOverflow }
