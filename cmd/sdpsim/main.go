// Command sdpsim replays SDP session scripts against a simulated i.MX boot ROM.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/moffa90/go-imxsdp/host"
	"github.com/moffa90/go-imxsdp/logging"
	"github.com/moffa90/go-imxsdp/protocol"
	"github.com/moffa90/go-imxsdp/sim"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "sdpsim",
	Short: "Simulate the device side of the i.MX Serial Download Protocol.",
	Long: `sdpsim runs host-side SDP operations from a TOML script against an ` +
		`in-memory boot ROM simulator and checks the device responses.`,
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run <script.toml>",
	Short: "Replay a session script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadEnv(envFile); err != nil {
			return err
		}

		script, err := loadScript(args[0])
		if err != nil {
			return err
		}
		logging.ApplyEnv(&script.Log)

		logger := logging.New(os.Stderr, "sdpsim", script.Log)
		dev := sim.New(sim.WithLogger(logger))
		atexit.Register(dev.ReleaseAll)

		client := host.New(dev,
			host.WithLogger(logger),
			host.WithChunkSize(script.ChunkSize),
			host.WithSecurityCheck(script.SecurityCheck),
		)

		return runSteps(cmd.Context(), client, script.Steps, cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the protocol version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), protocol.ProtocolVersion)
	},
}

func init() {
	runCmd.Flags().StringVar(&envFile, "env", ".env", "dotenv file with SDPSIM_* overrides")
	rootCmd.AddCommand(runCmd, versionCmd)
}

// loadEnv loads path into the environment. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func main() {
	code := 0
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		code = 1
	}
	atexit.Exit(code)
}
