package sim

import (
	"fmt"
	"sync"

	"github.com/rs/xid"

	"github.com/moffa90/go-imxsdp/protocol"
)

// Simulator is the device side of an SDP link. Each Simulator owns its
// regions and session state, so independent simulators never interfere.
//
// Simulator is safe for concurrent use; phase calls are serialized.
type Simulator struct {
	mu       sync.Mutex
	config   Config
	registry Registry
	session  session
}

// New creates a Simulator with no regions.
//
// Example:
//
//	dev := sim.New(sim.WithLogger(logger))
//	defer dev.ReleaseAll()
func New(opts ...Option) *Simulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ID == "" {
		cfg.ID = xid.New().String()
	}

	return &Simulator{config: cfg}
}

// ID returns the device name used in log output.
func (s *Simulator) ID() string { return s.config.ID }

// Simulate runs one protocol phase. buf carries the phase payload in and
// the device response out; count is the number of payload bytes for data
// phases. Status phases ignore count and size a register read by the
// count of the pending command. expected is the response size the host
// asked for and is only logged.
//
// Phases are not validated against each other beyond the session state:
// a data phase needs a pending write, a status phase needs any command.
// Unknown phases are accepted and ignored.
func (s *Simulator) Simulate(phase protocol.Phase, buf []byte, count, expected uint32) (protocol.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		res protocol.Result
		err error
	)
	switch phase {
	case protocol.PhaseCommand:
		err = s.command(buf)
	case protocol.PhaseData:
		err = s.data(buf, count)
	case protocol.PhaseSecurityQuery:
		err = s.security(buf)
	case protocol.PhaseStatus:
		res, err = s.status(buf)
	default:
		s.logDebug("ignoring phase", "phase", phase.String())
	}

	if err != nil {
		s.logError("phase rejected",
			"phase", phase.String(),
			"count", count,
			"expected", expected,
			"err", err,
		)
	}
	return res, err
}

func (s *Simulator) decode(p []byte) (protocol.Command, int, error) {
	if s.config.Decoder == nil {
		return protocol.Command{}, 0, ErrNoDecoder
	}

	cmd, n, err := s.config.Decoder.Decode(p)
	if err != nil {
		return protocol.Command{}, 0, fmt.Errorf("decode command: %w", err)
	}
	if n < 0 || n > len(p) {
		return protocol.Command{}, 0, fmt.Errorf("decoder consumed %d of %d bytes: %w", n, len(p), ErrShortBuffer)
	}
	return cmd, n, nil
}

func (s *Simulator) command(buf []byte) error {
	cmd, n, err := s.decode(buf)
	if err != nil {
		return err
	}

	s.logDebug("command",
		"cmd", cmd.Kind.String(),
		"addr", fmt.Sprintf("0x%08X", cmd.Address),
		"count", cmd.Count,
	)

	var selected *Region
	switch cmd.Kind {
	case protocol.KindWriteFile, protocol.KindWriteDCD:
		selected = s.registry.Append(cmd.Address, cmd.Count)
	case protocol.KindReadRegister:
		selected, _ = s.registry.FindContaining(cmd.Address)
	}

	s.session.begin(buf[:n], cmd.Kind, selected)
	return nil
}

func (s *Simulator) data(buf []byte, count uint32) error {
	if s.session.state != StateAwaitingData || s.session.selected == nil {
		return ErrNoSelectedRegion
	}
	if uint64(count) > uint64(len(buf)) {
		return fmt.Errorf("data phase of %d bytes with %d-byte buffer: %w", count, len(buf), ErrShortBuffer)
	}

	return s.session.selected.Write(buf[:count])
}

func (s *Simulator) security(buf []byte) error {
	if len(buf) < protocol.StatusSize {
		return ErrShortBuffer
	}
	return protocol.PutStatus(buf, uint32(protocol.HABModeOpen))
}

func (s *Simulator) status(buf []byte) (protocol.Result, error) {
	if s.session.state == StateIdle {
		return protocol.ResultOK, ErrNoActiveSession
	}

	cmd, _, err := s.decode(s.session.pending)
	if err != nil {
		return protocol.ResultOK, err
	}

	switch cmd.Kind {
	case protocol.KindWriteFile:
		return protocol.ResultOK, s.putStatus(buf, protocol.StatusWriteFileComplete)
	case protocol.KindWriteDCD:
		return protocol.ResultOK, s.putStatus(buf, protocol.StatusWriteDCDComplete)
	case protocol.KindReadRegister:
		return protocol.ResultOK, s.readRegister(buf, cmd.Address, cmd.Count)
	case protocol.KindJumpAddress:
		s.logDebug("jump", "addr", fmt.Sprintf("0x%08X", cmd.Address))
		return protocol.ResultNoResponse, nil
	default:
		return protocol.ResultOK, nil
	}
}

func (s *Simulator) putStatus(buf []byte, status uint32) error {
	if len(buf) < protocol.StatusSize {
		return ErrShortBuffer
	}
	return protocol.PutStatus(buf, status)
}

func (s *Simulator) readRegister(buf []byte, addr, count uint32) error {
	region, ok := s.registry.FindContaining(addr)
	if !ok {
		return &AddressError{Addr: addr}
	}

	data, err := region.ReadAt(addr, count)
	if err != nil {
		return err
	}
	if len(buf) < len(data) {
		return fmt.Errorf("read of %d bytes into %d-byte buffer: %w", len(data), len(buf), ErrShortBuffer)
	}

	copy(buf, data)
	return nil
}

// ReleaseAll drops every region and clears the selected region. The pending
// command survives, so a later status phase answers against the empty
// registry. It always succeeds and is safe to call on a simulator that
// never saw a write.
func (s *Simulator) ReleaseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logDebug("release", "regions", s.registry.Len())
	s.registry.ReleaseAll()
	s.session.release()
}

// State returns the current session state.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.state
}

// RegionInfo is a point-in-time copy of one region.
type RegionInfo struct {
	Base    uint32
	Len     uint32
	Written uint32
	Data    []byte
}

// Regions returns copies of all regions in creation order.
func (s *Simulator) Regions() []RegionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]RegionInfo, 0, s.registry.Len())
	for _, r := range s.registry.Regions() {
		out = append(out, RegionInfo{
			Base:    r.Base,
			Len:     r.Len,
			Written: r.Written(),
			Data:    r.Bytes(),
		})
	}
	return out
}

func (s *Simulator) logDebug(msg string, keysAndValues ...interface{}) {
	s.config.Logger.Debug(msg, append([]interface{}{"device", s.config.ID}, keysAndValues...)...)
}

func (s *Simulator) logError(msg string, keysAndValues ...interface{}) {
	s.config.Logger.Error(msg, append([]interface{}{"device", s.config.ID}, keysAndValues...)...)
}
