package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/platkit/internal/config"
	"github.com/arcadelab/platkit/internal/platform/tui"
	"github.com/arcadelab/platkit/internal/sim"
)

var flagSandboxScene string

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Drive an actor interactively",
	Long: `Open an interactive terminal sandbox: one actor in a scene, stepped
at the kernel's fixed 60Hz rate.

Controls:
  Left/Right, A/D  - Move
  Space/W/Up       - Jump
  Down/S           - Fast fall
  E                - Run
  R                - Respawn
  Tab              - Next scene
  Q/Ctrl+C         - Quit

By default each scene uses its own tuning; --params replaces it everywhere.

Examples:
  platkit sandbox
  platkit sandbox --scene corridor
  platkit sandbox --params ./floaty.yaml`,
	Run: runSandbox,
}

func init() {
	sandboxCmd.Flags().StringVar(&flagSandboxScene, "scene", "", "Scene to start in (default: first listed)")
}

// paramsOverride resolves --params into an optional tuning override.
func paramsOverride() (*sim.Params, error) {
	if flagParamsPath == "" {
		return nil, nil
	}
	p, err := config.LoadParams(flagParamsPath)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func runSandbox(_ *cobra.Command, _ []string) {
	override, err := paramsOverride()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.Run(flagSandboxScene, override, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
