package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadelab/platkit/internal/replay"
	"github.com/arcadelab/platkit/internal/scenario"
	"github.com/arcadelab/platkit/internal/sim"
)

// The canonical scenario: 180 ticks on the flat scene with default tuning,
// RIGHT held for the first 120 ticks and JUMP pressed on tick 10. Its trace
// hash is the cross-host parity anchor.
const (
	canonicalTicks     = 180
	canonicalRightEnd  = 120
	canonicalJumpTick  = 10
	canonicalTraceHash = uint64(0x94db7b2925cfad14)
)

var flagTraceSave string

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Verify the canonical scenario trace",
	Long: `Run the canonical 180-tick scenario and compare its trace hash
against the reference value. Any port of the kernel must reproduce this hash
exactly; a mismatch exits with status 1.

Examples:
  platkit trace
  platkit trace --save canonical`,
	Run: runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTraceSave, "save", "", "Record the run in the database under this name")
}

func canonicalDocument() (*replay.Document, error) {
	scn, err := scenario.Create(scenario.Flat)
	if err != nil {
		return nil, err
	}

	doc := &replay.Document{
		Params:  sim.DefaultParams(),
		World:   scn.World,
		Initial: scn.Spawn,
	}
	for tick := 0; tick < canonicalTicks; tick++ {
		var b sim.Buttons
		if tick < canonicalRightEnd {
			b |= sim.ButtonRight
		}
		if tick == canonicalJumpTick {
			b |= sim.ButtonJump
		}
		doc.Inputs = append(doc.Inputs, b)
	}
	return doc, nil
}

func runTrace(_ *cobra.Command, _ []string) {
	doc, err := canonicalDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := replay.Run(doc, nil)

	final := struct {
		Ticks    int     `json:"ticks"`
		X        float32 `json:"x"`
		Y        float32 `json:"y"`
		VX       float32 `json:"vx"`
		VY       float32 `json:"vy"`
		Grounded bool    `json:"grounded"`
		Jumped   int     `json:"jumped"`
		Landed   int     `json:"landed"`
		Bonked   int     `json:"bonked"`
	}{
		res.Ticks,
		res.Final.X, res.Final.Y, res.Final.VX, res.Final.VY, res.Final.Grounded,
		res.Jumped, res.Landed, res.Bonked,
	}
	out, err := json.Marshal(final)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	fmt.Printf("trace_hash=%016x parity_hash=%016x\n", res.TraceHash, res.ParityHash)

	if flagTraceSave != "" {
		if err := saveRun(flagTraceSave, res); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("saved as %q\n", flagTraceSave)
	}

	if res.TraceHash != canonicalTraceHash {
		fmt.Fprintf(os.Stderr, "MISMATCH: want trace_hash=%016x\n", canonicalTraceHash)
		os.Exit(1)
	}
	fmt.Println("OK")
}
