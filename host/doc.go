// Package host provides the host side of the i.MX Serial Download Protocol.
//
// # Overview
//
// A Client sequences each SDP command through its phases:
//   - Write File / Write DCD: command, security query, data chunks, status
//   - Read Register: command, security query, status carrying the data
//   - Jump: command, security query, then silence from the device
//
// # Basic Usage
//
// The Client talks to anything implementing Device. The simulator in
// package sim is the usual test target:
//
//	dev := sim.New()
//	defer dev.ReleaseAll()
//
//	client := host.New(dev)
//	if err := client.WriteFile(ctx, 0x00910000, image); err != nil {
//	    log.Fatal(err)
//	}
//	if err := client.Jump(ctx, 0x00910000); err != nil {
//	    log.Fatal(err)
//	}
//
// # Progress Tracking
//
//	client := host.New(dev,
//	    host.WithProgressCallback(func(p host.Progress) {
//	        fmt.Printf("[%s] %s %.1f%%\n", p.Operation, p.Phase, p.Percentage)
//	    }),
//	)
//
// # Context Support
//
// Every operation takes a context, checked before each phase:
//
//	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
//	defer cancel()
//	data, err := client.ReadRegister(ctx, 0x1000, 16)
//
// # Error Handling
//
// The package provides structured error types:
//   - PhaseError: the device rejected a phase; unwraps to the device error
//   - SecurityError: the device reported an unknown HAB mode
//   - protocol.StatusError: a write finished with the wrong status word
//   - ErrJumpNotAcknowledged: the device answered a jump with a status
package host
