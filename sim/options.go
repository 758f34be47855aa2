package sim

import (
	"github.com/moffa90/go-imxsdp/logging"
	"github.com/moffa90/go-imxsdp/protocol"
)

// Config holds the simulator configuration.
type Config struct {
	// Decoder parses command phase payloads. A nil Decoder makes every
	// command and status phase fail with ErrNoDecoder.
	Decoder protocol.Decoder

	// Logger receives per-phase diagnostics (optional)
	Logger logging.Logger

	// ID names the simulated device in log output. Generated when empty.
	ID string
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Decoder: protocol.DefaultDecoder,
		Logger:  logging.Nop(),
	}
}

// Option is a functional option for configuring the Simulator.
type Option func(*Config)

// WithDecoder sets the command decoder. Passing nil removes it.
//
// Example:
//
//	dev := sim.New(sim.WithDecoder(protocol.DecoderFunc(myDecode)))
func WithDecoder(d protocol.Decoder) Option {
	return func(c *Config) {
		c.Decoder = d
	}
}

// WithLogger sets a logger for simulator diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithID sets the device name used in log output.
func WithID(id string) Option {
	return func(c *Config) {
		c.ID = id
	}
}
