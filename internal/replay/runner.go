package replay

import (
	"github.com/arcadelab/platkit/internal/sim"
	"github.com/arcadelab/platkit/internal/trace"
)

// Row is one tick of replay output, mirroring the reference harness columns.
type Row struct {
	Tick     int
	X, Y     float32
	VX, VY   float32
	Grounded bool
}

// Result summarizes a finished replay.
type Result struct {
	Ticks  int
	Final  sim.State
	Jumped int
	Landed int
	Bonked int

	// TraceHash folds every tick's rounded state; ParityHash covers the
	// final state plus event totals at milli resolution. Together they make
	// cross-host trajectory comparison a single integer check.
	TraceHash  uint64
	ParityHash uint64
}

// Run replays the document tick-by-tick from its initial state, invoking
// emit (if non-nil) once per tick. The document is not mutated; runs are
// repeatable.
func Run(doc *Document, emit func(Row)) Result {
	state := doc.Initial
	acc := trace.NewAccumulator()

	var res Result
	for tick, buttons := range doc.Inputs {
		ev := sim.Step(&doc.Params, doc.World, &state, buttons)
		if ev.Jumped {
			res.Jumped++
		}
		if ev.Landed {
			res.Landed++
		}
		if ev.Bonked {
			res.Bonked++
		}

		acc.FoldTick(state.X, state.Y, state.VX, state.VY, state.Grounded)

		if emit != nil {
			emit(Row{
				Tick:     tick,
				X:        state.X,
				Y:        state.Y,
				VX:       state.VX,
				VY:       state.VY,
				Grounded: state.Grounded,
			})
		}
	}

	res.Ticks = len(doc.Inputs)
	res.Final = state
	res.TraceHash = acc.Sum64()
	res.ParityHash = trace.FinalStateHash(
		state.X, state.Y, state.VX, state.VY, state.Grounded,
		res.Jumped, res.Landed, res.Bonked,
	)
	return res
}
