package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/moffa90/go-imxsdp/protocol"
	"github.com/moffa90/go-imxsdp/sim"
)

func TestPhaseError(t *testing.T) {
	err := &PhaseError{
		Operation: "read register",
		Phase:     protocol.PhaseStatus,
		Err:       sim.ErrUnmappedAddress,
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "read register") {
		t.Errorf("error message should contain operation, got: %s", errMsg)
	}

	if !strings.Contains(errMsg, "status phase") {
		t.Errorf("error message should contain phase, got: %s", errMsg)
	}

	if !errors.Is(err, sim.ErrUnmappedAddress) {
		t.Errorf("PhaseError should unwrap to the device error")
	}
}

func TestSecurityError(t *testing.T) {
	err := &SecurityError{Mode: protocol.HABMode(0xCAFEF00D)}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "0xCAFEF00D") {
		t.Errorf("error message should contain the mode, got: %s", errMsg)
	}
}

func TestErrorInterfaces(t *testing.T) {
	var _ error = &PhaseError{}
	var _ error = &SecurityError{}
}
