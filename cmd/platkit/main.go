// platkit is a toolchain for a deterministic 2D character-movement kernel.
//
// Usage:
//
//	platkit replay <file>    - Run a replay document and print its trajectory
//	platkit trace            - Run the canonical scenario and verify its trace
//	platkit scenarios        - List built-in scenes
//	platkit runs             - Show recorded replay runs
//	platkit params           - Print the effective tuning as YAML
//	platkit sandbox          - Drive an actor interactively in the terminal
//	platkit serve            - Serve the sandbox over SSH
//
// Global flags:
//
//	--db <path>      - Runs database path (default: ~/.platkit/runs.db)
//	--params <path>  - Custom tuning YAML (default: search order, then embedded)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath     string
	flagParamsPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platkit",
	Short: "Deterministic 2D movement kernel toolchain",
	Long: `platkit runs, verifies and explores a deterministic fixed-step 2D
movement and collision kernel.

Available commands:
  replay     - Run a replay document tick-by-tick
  trace      - Verify the canonical scenario trace hash
  scenarios  - List built-in scenes
  runs       - Show recorded replay runs
  params     - Print the effective tuning as YAML
  sandbox    - Drive an actor interactively
  serve      - Serve the sandbox over SSH

Examples:
  platkit replay jump.json --save jump
  platkit trace
  platkit sandbox --scene corridor
  platkit serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platkit/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagParamsPath, "params", "", "Path to custom tuning YAML")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(paramsCmd)
	rootCmd.AddCommand(sandboxCmd)
	rootCmd.AddCommand(serveCmd)
}
