// Package sim simulates the device side of the i.MX Serial Download Protocol.
//
// # Overview
//
// A Simulator answers the four SDP phases the way a boot ROM does, so
// host-side SDP code can be tested without hardware:
//   - Command: decode the block; Write File / Write DCD create a region,
//     Read Register selects the region holding the address
//   - Data: append payload to the region created by the last write
//   - Security query: always reports an open HAB configuration
//   - Status: completion word for writes, register bytes for reads, and
//     protocol.ResultNoResponse after a jump
//
// # Basic Usage
//
//	dev := sim.New()
//	defer dev.ReleaseAll()
//
//	block, _ := protocol.BuildWriteFileCmd(0x1000, 16)
//	_, err := dev.Simulate(protocol.PhaseCommand, block, uint32(len(block)), 0)
//	_, err = dev.Simulate(protocol.PhaseData, payload, 16, 0)
//
// # Regions
//
// Regions are kept in creation order. When windows overlap, lookups return
// the oldest region containing the address.
//
// # Error Handling
//
// Errors compare with errors.Is against the package sentinels:
//   - ErrNoDecoder: the simulator has no command decoder
//   - ErrUnmappedAddress: a read targets memory no write created (*AddressError)
//   - ErrOutOfRangeRead: a read runs past its region (*RangeError)
//   - ErrNoSelectedRegion: a data phase without a pending write
//   - ErrRegionOverflow: a data phase past the declared length (*OverflowError)
//   - ErrNoActiveSession: a status phase before any command
//   - ErrShortBuffer: the caller's buffer cannot hold the payload or response
//
// A successful jump is not an error: Simulate returns
// protocol.ResultNoResponse.
package sim
