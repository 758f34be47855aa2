package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/moffa90/go-imxsdp/logging"
	"github.com/moffa90/go-imxsdp/protocol"
)

// Step operations.
const (
	OpWriteFile = "write_file"
	OpWriteDCD  = "write_dcd"
	OpRead      = "read"
	OpJump      = "jump"
	OpSecurity  = "security"
)

type fileConfig struct {
	LogLevel      string     `toml:"log_level"`
	NoColor       bool       `toml:"no_color"`
	ChunkSize     int        `toml:"chunk_size"`
	SecurityCheck bool       `toml:"security_check"`
	Steps         []fileStep `toml:"step"`
}

type fileStep struct {
	Op     string `toml:"op"`
	Addr   uint32 `toml:"addr"`
	Data   string `toml:"data"`
	Count  uint32 `toml:"count"`
	Expect string `toml:"expect"`
}

// Script is a parsed session script.
type Script struct {
	Log           logging.Options
	ChunkSize     int
	SecurityCheck bool
	Steps         []Step
}

// Step is one host operation replayed against the simulator.
type Step struct {
	Op     string
	Addr   uint32
	Data   []byte
	Count  uint32
	Expect []byte
}

func defaultScript() Script {
	return Script{
		Log:           logging.DefaultOptions(),
		ChunkSize:     protocol.DefaultChunkSize,
		SecurityCheck: true,
	}
}

func loadScript(path string) (Script, error) {
	script := defaultScript()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Script{}, fmt.Errorf("load script: %w", err)
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return Script{}, fmt.Errorf("parse log_level: unknown level %q", raw.LogLevel)
		}
		script.Log.Level = lvl
	}

	if meta.IsDefined("no_color") {
		script.Log.NoColor = raw.NoColor
	}

	if meta.IsDefined("chunk_size") {
		if raw.ChunkSize <= 0 || raw.ChunkSize > protocol.DefaultChunkSize {
			return Script{}, fmt.Errorf("chunk_size must be 1-%d, got %d", protocol.DefaultChunkSize, raw.ChunkSize)
		}
		script.ChunkSize = raw.ChunkSize
	}

	if meta.IsDefined("security_check") {
		script.SecurityCheck = raw.SecurityCheck
	}

	for i, rs := range raw.Steps {
		step, err := parseStep(rs)
		if err != nil {
			return Script{}, fmt.Errorf("step[%d] invalid: %w", i, err)
		}
		script.Steps = append(script.Steps, step)
	}

	if len(script.Steps) == 0 {
		return Script{}, fmt.Errorf("script has no steps")
	}

	return script, nil
}

func parseStep(rs fileStep) (Step, error) {
	step := Step{
		Op:    strings.ToLower(strings.TrimSpace(rs.Op)),
		Addr:  rs.Addr,
		Count: rs.Count,
	}

	var err error
	if step.Data, err = parseHex(rs.Data); err != nil {
		return Step{}, fmt.Errorf("data: %w", err)
	}
	if step.Expect, err = parseHex(rs.Expect); err != nil {
		return Step{}, fmt.Errorf("expect: %w", err)
	}

	switch step.Op {
	case OpWriteFile, OpWriteDCD:
		if len(step.Data) == 0 {
			return Step{}, fmt.Errorf("%s requires data", step.Op)
		}
	case OpRead:
		if step.Count == 0 {
			step.Count = uint32(len(step.Expect))
		}
		if step.Count == 0 {
			return Step{}, fmt.Errorf("read requires count or expect")
		}
		if len(step.Expect) > 0 && uint32(len(step.Expect)) != step.Count {
			return Step{}, fmt.Errorf("expect has %d bytes, count is %d", len(step.Expect), step.Count)
		}
	case OpJump, OpSecurity:
	case "":
		return Step{}, fmt.Errorf("op is required")
	default:
		return Step{}, fmt.Errorf("unknown op %q", rs.Op)
	}

	return step, nil
}

// parseHex accepts hex with optional whitespace and a leading 0x.
func parseHex(raw string) ([]byte, error) {
	s := strings.Join(strings.Fields(raw), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, nil
	}
	return hex.DecodeString(s)
}
