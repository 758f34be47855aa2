package host

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/moffa90/go-imxsdp/protocol"
	"github.com/moffa90/go-imxsdp/sim"
)

// recordingDevice forwards to a simulator and records every phase.
type recordingDevice struct {
	dev    *sim.Simulator
	phases []protocol.Phase
	counts []uint32

	// override replaces the simulator's answer for one phase when set
	override func(phase protocol.Phase, buf []byte) (protocol.Result, bool, error)
}

func (d *recordingDevice) Simulate(phase protocol.Phase, buf []byte, count, expected uint32) (protocol.Result, error) {
	d.phases = append(d.phases, phase)
	d.counts = append(d.counts, count)
	if d.override != nil {
		if res, ok, err := d.override(phase, buf); ok {
			return res, err
		}
	}
	return d.dev.Simulate(phase, buf, count, expected)
}

var _ Device = (*sim.Simulator)(nil)

// jumpOnlyDevice answers every phase with no response and needs no simulator.
type jumpOnlyDevice struct {
	calls int
}

func (d *jumpOnlyDevice) Simulate(phase protocol.Phase, buf []byte, count, expected uint32) (protocol.Result, error) {
	d.calls++
	if phase == protocol.PhaseStatus {
		return protocol.ResultNoResponse, nil
	}
	return protocol.ResultOK, nil
}

// MockLogger records log messages for assertions.
type MockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	errorMsgs []string
}

func (l *MockLogger) Debug(msg string, kv ...interface{}) {
	l.debugMsgs = append(l.debugMsgs, msg)
}

func (l *MockLogger) Info(msg string, kv ...interface{}) {
	l.infoMsgs = append(l.infoMsgs, msg)
}

func (l *MockLogger) Error(msg string, kv ...interface{}) {
	l.errorMsgs = append(l.errorMsgs, msg)
}

func pattern(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i * 7)
	}
	return out
}

var _ = Describe("Client", func() {
	var (
		ctx    context.Context
		dev    *recordingDevice
		logger *MockLogger
		client *Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		dev = &recordingDevice{dev: sim.New()}
		logger = &MockLogger{}
		client = New(dev, WithLogger(logger))
	})

	AfterEach(func() {
		dev.dev.ReleaseAll()
	})

	It("should panic on a nil device", func() {
		Expect(func() { New(nil) }).To(Panic())
	})

	It("should report an open security configuration", func() {
		mode, err := client.SecurityMode(ctx)

		Expect(err).ToNot(HaveOccurred())
		Expect(mode).To(Equal(protocol.HABModeOpen))
		Expect(dev.phases).To(Equal([]protocol.Phase{protocol.PhaseSecurityQuery}))
	})

	Context("when writing a file", func() {
		It("should round trip through read register", func() {
			data := pattern(16)

			Expect(client.WriteFile(ctx, 0x1000, data)).To(Succeed())

			got, err := client.ReadRegister(ctx, 0x1000, 16)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(data))
		})

		It("should follow the write phase grammar", func() {
			Expect(client.WriteFile(ctx, 0x1000, pattern(4))).To(Succeed())

			Expect(dev.phases).To(Equal([]protocol.Phase{
				protocol.PhaseCommand,
				protocol.PhaseSecurityQuery,
				protocol.PhaseData,
				protocol.PhaseStatus,
			}))
			Expect(logger.infoMsgs).To(ContainElement("write file complete"))
		})

		It("should split data into chunks", func() {
			client = New(dev, WithChunkSize(6))

			Expect(client.WriteFile(ctx, 0x2000, pattern(16))).To(Succeed())

			var dataCounts []uint32
			for i, p := range dev.phases {
				if p == protocol.PhaseData {
					dataCounts = append(dataCounts, dev.counts[i])
				}
			}
			Expect(dataCounts).To(Equal([]uint32{6, 6, 4}))

			regions := dev.dev.Regions()
			Expect(regions).To(HaveLen(1))
			Expect(regions[0].Written).To(BeEquivalentTo(16))
			Expect(regions[0].Data).To(Equal(pattern(16)))
		})

		It("should report progress through to completion", func() {
			var seen []Progress
			client = New(dev,
				WithChunkSize(8),
				WithProgressCallback(func(p Progress) { seen = append(seen, p) }),
			)

			Expect(client.WriteFile(ctx, 0x3000, pattern(16))).To(Succeed())

			Expect(seen).ToNot(BeEmpty())
			Expect(seen[0].Phase).To(Equal(PhaseCommand))
			Expect(seen[0].Operation).To(Equal("write file"))

			last := seen[len(seen)-1]
			Expect(last.Phase).To(Equal(PhaseComplete))
			Expect(last.Percentage).To(BeNumerically("==", 100))
			Expect(last.BytesWritten).To(Equal(16))
			Expect(last.TotalBytes).To(Equal(16))
		})

		It("should skip the security query when disabled", func() {
			client = New(dev, WithSecurityCheck(false))

			Expect(client.WriteFile(ctx, 0x1000, pattern(4))).To(Succeed())

			Expect(dev.phases).ToNot(ContainElement(protocol.PhaseSecurityQuery))
		})

		It("should surface a wrong completion status", func() {
			dev.override = func(phase protocol.Phase, buf []byte) (protocol.Result, bool, error) {
				if phase != protocol.PhaseStatus {
					return protocol.ResultOK, false, nil
				}
				_ = protocol.PutStatus(buf, 0x12345678)
				return protocol.ResultOK, true, nil
			}

			err := client.WriteFile(ctx, 0x1000, pattern(4))

			Expect(protocol.IsStatusError(err)).To(BeTrue())
		})
	})

	Context("when writing a DCD table", func() {
		It("should accept the DCD completion status", func() {
			Expect(client.WriteDCD(ctx, 0x00910000, pattern(32))).To(Succeed())

			got, err := client.ReadRegister(ctx, 0x00910010, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(pattern(32)[16:20]))
		})
	})

	Context("when reading registers", func() {
		BeforeEach(func() {
			Expect(client.WriteFile(ctx, 0x1000, pattern(16))).To(Succeed())
			Expect(client.WriteFile(ctx, 0x1008, make([]byte, 16))).To(Succeed())
		})

		It("should read from the first region when windows overlap", func() {
			got, err := client.ReadRegister(ctx, 0x100C, 4)

			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(pattern(16)[12:16]))
		})

		It("should reject reads that leave the region", func() {
			_, err := client.ReadRegister(ctx, 0x100C, 8)

			Expect(err).To(MatchError(sim.ErrOutOfRangeRead))

			var pe *PhaseError
			Expect(errors.As(err, &pe)).To(BeTrue())
			Expect(pe.Phase).To(Equal(protocol.PhaseStatus))
			Expect(logger.errorMsgs).To(ContainElement("phase failed"))
		})

		It("should reject unmapped addresses", func() {
			_, err := client.ReadRegister(ctx, 0x5000, 4)

			Expect(err).To(MatchError(sim.ErrUnmappedAddress))
		})

		It("should reject reads after the device is released", func() {
			dev.dev.ReleaseAll()

			_, err := client.ReadRegister(ctx, 0x1000, 4)

			Expect(err).To(MatchError(sim.ErrUnmappedAddress))
		})

		It("should follow the read phase grammar", func() {
			dev.phases = nil

			_, err := client.ReadRegister(ctx, 0x1000, 4)

			Expect(err).ToNot(HaveOccurred())
			Expect(dev.phases).To(Equal([]protocol.Phase{
				protocol.PhaseCommand,
				protocol.PhaseSecurityQuery,
				protocol.PhaseStatus,
			}))
		})
	})

	Context("when jumping", func() {
		It("should accept a silent device", func() {
			Expect(client.Jump(ctx, 0x00910400)).To(Succeed())
			Expect(logger.infoMsgs).To(ContainElement("jumped"))
		})

		It("should reject a device that answers with a status", func() {
			dev.override = func(phase protocol.Phase, buf []byte) (protocol.Result, bool, error) {
				if phase != protocol.PhaseStatus {
					return protocol.ResultOK, false, nil
				}
				_ = protocol.PutStatus(buf, 0x33333333)
				return protocol.ResultOK, true, nil
			}

			err := client.Jump(ctx, 0x00910400)

			Expect(err).To(MatchError(ErrJumpNotAcknowledged))
			Expect(err.Error()).To(ContainSubstring("0x33333333"))
		})
	})

	Context("when the device is not a simulator", func() {
		It("should jump using protocol results only", func() {
			d := &jumpOnlyDevice{}
			c := New(d, WithSecurityCheck(false))

			Expect(c.Jump(ctx, 0x00910400)).To(Succeed())
			Expect(d.calls).To(Equal(2))
		})
	})

	Context("when the security configuration is unknown", func() {
		It("should fail with a SecurityError", func() {
			dev.override = func(phase protocol.Phase, buf []byte) (protocol.Result, bool, error) {
				if phase != protocol.PhaseSecurityQuery {
					return protocol.ResultOK, false, nil
				}
				_ = protocol.PutStatus(buf, 0xCAFEF00D)
				return protocol.ResultOK, true, nil
			}

			_, err := client.ReadRegister(ctx, 0x1000, 4)

			var se *SecurityError
			Expect(errors.As(err, &se)).To(BeTrue())
			Expect(se.Mode).To(Equal(protocol.HABMode(0xCAFEF00D)))
		})
	})

	Context("when the context is cancelled", func() {
		It("should stop before the next phase", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			err := client.WriteFile(cctx, 0x1000, pattern(4))

			Expect(err).To(MatchError(context.Canceled))
			Expect(dev.phases).To(BeEmpty())
			Expect(dev.dev.Regions()).To(BeEmpty())
		})
	})

	Context("when the device has no decoder", func() {
		It("should report the configuration error", func() {
			client = New(sim.New(sim.WithDecoder(nil)))

			err := client.WriteFile(ctx, 0x1000, pattern(4))

			Expect(err).To(MatchError(sim.ErrNoDecoder))
		})
	})
})
