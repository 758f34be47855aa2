package host

import (
	"context"
	"fmt"
	"time"

	"github.com/moffa90/go-imxsdp/protocol"
)

// Device is the device end of an SDP link. *sim.Simulator implements it;
// a HID transport can implement it by mapping each phase to its report.
type Device interface {
	Simulate(phase protocol.Phase, buf []byte, count, expected uint32) (protocol.Result, error)
}

// Client drives SDP commands through their phases against a Device.
//
// Client is not safe for concurrent use; SDP commands must not interleave.
type Client struct {
	device Device
	config Config
}

// New creates a new Client with the given device and options.
//
// Example:
//
//	dev := sim.New()
//	client := host.New(dev,
//	    host.WithProgressCallback(progressFunc),
//	    host.WithChunkSize(512),
//	)
func New(device Device, opts ...Option) *Client {
	if device == nil {
		panic("device cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Client{
		device: device,
		config: cfg,
	}
}

// SecurityMode runs a security query phase and returns the HAB mode.
func (c *Client) SecurityMode(ctx context.Context) (protocol.HABMode, error) {
	buf := make([]byte, protocol.StatusSize)
	if _, err := c.transfer(ctx, "security query", protocol.PhaseSecurityQuery, buf, protocol.StatusSize, protocol.StatusSize); err != nil {
		return 0, err
	}

	mode, err := protocol.ParseHABMode(buf)
	if err != nil {
		return mode, &SecurityError{Mode: mode}
	}
	return mode, nil
}

// WriteFile downloads data to addr:
//  1. Command phase with a Write File block
//  2. Security query (if enabled)
//  3. Data phases of at most ChunkSize bytes
//  4. Status phase, expecting protocol.StatusWriteFileComplete
//
// Example:
//
//	err := client.WriteFile(ctx, 0x00910000, image)
func (c *Client) WriteFile(ctx context.Context, addr uint32, data []byte) error {
	cmd, err := protocol.BuildWriteFileCmd(addr, uint32(len(data)))
	if err != nil {
		return err
	}
	return c.write(ctx, "write file", cmd, data, protocol.StatusWriteFileComplete)
}

// WriteDCD downloads a device configuration data table to addr.
// The sequence matches WriteFile; the status word is protocol.StatusWriteDCDComplete.
func (c *Client) WriteDCD(ctx context.Context, addr uint32, data []byte) error {
	cmd, err := protocol.BuildWriteDCDCmd(addr, uint32(len(data)))
	if err != nil {
		return err
	}
	return c.write(ctx, "write dcd", cmd, data, protocol.StatusWriteDCDComplete)
}

func (c *Client) write(ctx context.Context, op string, cmd, data []byte, complete uint32) error {
	startTime := time.Now()
	total := len(data)

	c.reportProgress(Progress{
		Operation:  op,
		Phase:      PhaseCommand,
		TotalBytes: total,
	})

	if err := c.begin(ctx, op, cmd); err != nil {
		return err
	}

	written := 0
	for written < total {
		n := total - written
		if n > c.config.ChunkSize {
			n = c.config.ChunkSize
		}

		chunk := data[written : written+n]
		if _, err := c.transfer(ctx, op, protocol.PhaseData, chunk, uint32(n), 0); err != nil {
			return err
		}
		written += n

		c.reportProgress(Progress{
			Operation:    op,
			Phase:        PhaseData,
			BytesWritten: written,
			TotalBytes:   total,
			Percentage:   float64(written) / float64(total) * 95,
			ElapsedTime:  time.Since(startTime),
		})
	}

	c.reportProgress(Progress{
		Operation:    op,
		Phase:        PhaseStatus,
		BytesWritten: written,
		TotalBytes:   total,
		Percentage:   95,
		ElapsedTime:  time.Since(startTime),
	})

	status := make([]byte, protocol.StatusSize)
	if _, err := c.transfer(ctx, op, protocol.PhaseStatus, status, protocol.StatusSize, protocol.StatusSize); err != nil {
		return err
	}
	if err := protocol.CheckStatus(op, status, complete); err != nil {
		return err
	}

	c.reportProgress(Progress{
		Operation:    op,
		Phase:        PhaseComplete,
		BytesWritten: written,
		TotalBytes:   total,
		Percentage:   100,
		ElapsedTime:  time.Since(startTime),
	})

	c.logInfo(op+" complete",
		"bytes", written,
		"elapsed", time.Since(startTime).String(),
	)

	return nil
}

// ReadRegister reads count bytes starting at addr.
//
// Example:
//
//	data, err := client.ReadRegister(ctx, 0x020D8000, 4)
func (c *Client) ReadRegister(ctx context.Context, addr, count uint32) ([]byte, error) {
	const op = "read register"

	cmd, err := protocol.BuildReadRegisterCmd(addr, count)
	if err != nil {
		return nil, err
	}
	if err := c.begin(ctx, op, cmd); err != nil {
		return nil, err
	}

	data := make([]byte, count)
	if _, err := c.transfer(ctx, op, protocol.PhaseStatus, data, count, count); err != nil {
		return nil, err
	}

	c.logDebug("read register",
		"addr", fmt.Sprintf("0x%08X", addr),
		"count", count,
	)

	return data, nil
}

// Jump asks the device to execute the image whose vector table is at addr.
// A device that jumps sends no status; any status is reported as
// ErrJumpNotAcknowledged.
func (c *Client) Jump(ctx context.Context, addr uint32) error {
	const op = "jump"

	cmd, err := protocol.BuildJumpAddressCmd(addr)
	if err != nil {
		return err
	}
	if err := c.begin(ctx, op, cmd); err != nil {
		return err
	}

	status := make([]byte, protocol.StatusSize)
	res, err := c.transfer(ctx, op, protocol.PhaseStatus, status, protocol.StatusSize, protocol.StatusSize)
	if err != nil {
		return err
	}
	if res != protocol.ResultNoResponse {
		word, _ := protocol.ParseStatus(status)
		return fmt.Errorf("%w: 0x%08X", ErrJumpNotAcknowledged, word)
	}

	c.logInfo("jumped", "addr", fmt.Sprintf("0x%08X", addr))
	return nil
}

// begin sends the command block and, when enabled, the security query that
// follows every command on real hardware.
func (c *Client) begin(ctx context.Context, op string, cmd []byte) error {
	if _, err := c.transfer(ctx, op, protocol.PhaseCommand, cmd, uint32(len(cmd)), 0); err != nil {
		return err
	}

	if !c.config.SecurityCheck {
		return nil
	}

	mode, err := c.SecurityMode(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.logDebug("security mode", "hab", mode.String())
	return nil
}

// transfer runs one phase, honoring ctx cancellation between phases.
func (c *Client) transfer(ctx context.Context, op string, phase protocol.Phase, buf []byte, count, expected uint32) (protocol.Result, error) {
	if err := ctx.Err(); err != nil {
		return protocol.ResultOK, fmt.Errorf("cancelled: %w", err)
	}

	res, err := c.device.Simulate(phase, buf, count, expected)
	if err != nil {
		c.logError("phase failed", "op", op, "phase", phase.String(), "err", err)
		return res, &PhaseError{Operation: op, Phase: phase, Err: err}
	}
	return res, nil
}

// reportProgress calls the progress callback if configured.
func (c *Client) reportProgress(progress Progress) {
	if c.config.ProgressCallback != nil {
		c.config.ProgressCallback(progress)
	}
}

func (c *Client) logDebug(msg string, keysAndValues ...interface{}) {
	c.config.Logger.Debug(msg, keysAndValues...)
}

func (c *Client) logInfo(msg string, keysAndValues ...interface{}) {
	c.config.Logger.Info(msg, keysAndValues...)
}

func (c *Client) logError(msg string, keysAndValues ...interface{}) {
	c.config.Logger.Error(msg, keysAndValues...)
}
