package host

import (
	"github.com/moffa90/go-imxsdp/logging"
	"github.com/moffa90/go-imxsdp/protocol"
)

// Config holds the client configuration.
type Config struct {
	// ProgressCallback is called during transfers to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger logging.Logger

	// ChunkSize is the maximum payload per data phase.
	// Default is 1024 bytes (one HID report 2).
	ChunkSize int

	// SecurityCheck queries the HAB mode after every command phase, as the
	// boot ROM expects from a real host.
	SecurityCheck bool
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Logger:        logging.Nop(),
		ChunkSize:     protocol.DefaultChunkSize,
		SecurityCheck: true,
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithProgressCallback sets a callback function to track transfer progress.
//
// Example:
//
//	client := host.New(dev,
//	    host.WithProgressCallback(func(p host.Progress) {
//	        fmt.Printf("%s %.1f%% complete\n", p.Operation, p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the client operations.
//
// Example:
//
//	client := host.New(dev, host.WithLogger(logging.New(os.Stderr, "host", logging.DefaultOptions())))
func WithLogger(logger logging.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithChunkSize sets the maximum payload per data phase.
// Values outside 1..protocol.DefaultChunkSize are ignored.
//
// Example:
//
//	client := host.New(dev, host.WithChunkSize(64))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.DefaultChunkSize {
			c.ChunkSize = size
		}
	}
}

// WithSecurityCheck enables or disables the HAB query after each command.
// Default is true.
func WithSecurityCheck(enabled bool) Option {
	return func(c *Config) {
		c.SecurityCheck = enabled
	}
}
