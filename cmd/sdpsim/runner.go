package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/moffa90/go-imxsdp/host"
)

// MismatchError reports read data that differs from the script's expectation.
type MismatchError struct {
	Addr     uint32
	Expected []byte
	Actual   []byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("read at 0x%08X: expected % X, got % X", e.Addr, e.Expected, e.Actual)
}

// runSteps executes steps in order and stops at the first failure.
func runSteps(ctx context.Context, client *host.Client, steps []Step, out io.Writer) error {
	for i, step := range steps {
		if err := runStep(ctx, client, step, out); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}
	return nil
}

func runStep(ctx context.Context, client *host.Client, step Step, out io.Writer) error {
	switch step.Op {
	case OpWriteFile:
		if err := client.WriteFile(ctx, step.Addr, step.Data); err != nil {
			return err
		}
		fmt.Fprintf(out, "write_file 0x%08X %d bytes\n", step.Addr, len(step.Data))
	case OpWriteDCD:
		if err := client.WriteDCD(ctx, step.Addr, step.Data); err != nil {
			return err
		}
		fmt.Fprintf(out, "write_dcd  0x%08X %d bytes\n", step.Addr, len(step.Data))
	case OpRead:
		data, err := client.ReadRegister(ctx, step.Addr, step.Count)
		if err != nil {
			return err
		}
		if len(step.Expect) > 0 && !bytes.Equal(data, step.Expect) {
			return &MismatchError{Addr: step.Addr, Expected: step.Expect, Actual: data}
		}
		fmt.Fprintf(out, "read       0x%08X % X\n", step.Addr, data)
	case OpJump:
		if err := client.Jump(ctx, step.Addr); err != nil {
			return err
		}
		fmt.Fprintf(out, "jump       0x%08X\n", step.Addr)
	case OpSecurity:
		mode, err := client.SecurityMode(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "security   %s\n", mode)
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
	return nil
}
