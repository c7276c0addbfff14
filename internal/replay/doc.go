// Package replay implements the deterministic replay document and its
// reference harness: a JSON file describing parameter overrides, world
// geometry, an initial actor state and one input bit-set per tick. The
// parser validates structure loudly — a malformed document is rejected with
// the offending field named — so that nothing questionable ever reaches the
// kernel.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arcadelab/platkit/internal/sim"
)

// Document is a fully validated replay: ready-to-run parameters, world,
// initial state and per-tick inputs.
type Document struct {
	Params  sim.Params
	World   []sim.Rect
	Initial sim.State
	Inputs  []sim.Buttons
}

type rawDocument struct {
	Params       map[string]float64 `json:"params"`
	World        []rawRect          `json:"world"`
	InitialState *rawState          `json:"initial_state"`
	Inputs       []int              `json:"inputs"`
}

type rawRect struct {
	X *float32 `json:"x"`
	Y *float32 `json:"y"`
	W *float32 `json:"w"`
	H *float32 `json:"h"`
}

type rawState struct {
	X  *float32 `json:"x"`
	Y  *float32 `json:"y"`
	W  *float32 `json:"w"`
	H  *float32 `json:"h"`
	VX *float32 `json:"vx"`
	VY *float32 `json:"vy"`

	Grounded    *float64 `json:"grounded"`
	Coyote      *float32 `json:"coyote"`
	JumpBuffer  *float32 `json:"jump_buffer"`
	JumpWasDown *float64 `json:"jump_was_down"`
}

// Load reads and parses a replay document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates a replay document. The params section is optional and
// each known key falls back to the documented default when absent; unknown
// param names are ignored. World rectangles require all of x, y, w, h. The
// initial state requires x, y, w, h; dynamics and timer fields default to
// zero. Inputs are required, one small integer per tick.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("replay: invalid document: %w", err)
	}

	doc := &Document{Params: sim.DefaultParams()}
	applyParamOverrides(&doc.Params, raw.Params)

	if raw.World == nil {
		return nil, fmt.Errorf("replay: missing section %q", "world")
	}
	for i, r := range raw.World {
		if r.X == nil || r.Y == nil || r.W == nil || r.H == nil {
			return nil, fmt.Errorf("replay: world[%d]: x, y, w, h are all required", i)
		}
		doc.World = append(doc.World, sim.NewRect(*r.X, *r.Y, *r.W, *r.H))
	}

	if raw.InitialState == nil {
		return nil, fmt.Errorf("replay: missing section %q", "initial_state")
	}
	st, err := buildState(raw.InitialState)
	if err != nil {
		return nil, err
	}
	doc.Initial = st

	if raw.Inputs == nil {
		return nil, fmt.Errorf("replay: missing section %q", "inputs")
	}
	for i, bits := range raw.Inputs {
		if bits < 0 || bits > 255 {
			return nil, fmt.Errorf("replay: inputs[%d]: value %d out of byte range", i, bits)
		}
		doc.Inputs = append(doc.Inputs, sim.ButtonsFromBits(uint8(bits)))
	}

	return doc, nil
}

func buildState(r *rawState) (sim.State, error) {
	var st sim.State
	for _, f := range []struct {
		name string
		v    *float32
	}{
		{"x", r.X}, {"y", r.Y}, {"w", r.W}, {"h", r.H},
	} {
		if f.v == nil {
			return st, fmt.Errorf("replay: initial_state: missing field %q", f.name)
		}
	}

	st = sim.NewState(*r.X, *r.Y, *r.W, *r.H)
	if r.VX != nil {
		st.VX = *r.VX
	}
	if r.VY != nil {
		st.VY = *r.VY
	}
	if r.Grounded != nil {
		st.Grounded = *r.Grounded != 0
	}
	if r.Coyote != nil {
		st.Coyote = *r.Coyote
	}
	if r.JumpBuffer != nil {
		st.JumpBuffer = *r.JumpBuffer
	}
	if r.JumpWasDown != nil {
		st.JumpWasDown = *r.JumpWasDown != 0
	}
	return st, nil
}

// applyParamOverrides copies known snake_case keys onto the parameter
// record. The field table is the wire contract shared with the host
// binding; unknown names are ignored by design.
func applyParamOverrides(p *sim.Params, values map[string]float64) {
	if len(values) == 0 {
		return
	}
	fields := map[string]*float32{
		"ground_max_speed":     &p.GroundMaxSpeed,
		"ground_accel":         &p.GroundAccel,
		"ground_decel":         &p.GroundDecel,
		"ground_friction":      &p.GroundFriction,
		"run_multiplier":       &p.RunMultiplier,
		"air_max_speed":        &p.AirMaxSpeed,
		"air_accel":            &p.AirAccel,
		"air_decel":            &p.AirDecel,
		"air_drag":             &p.AirDrag,
		"gravity_up":           &p.GravityUp,
		"gravity_down":         &p.GravityDown,
		"terminal_velocity":    &p.TerminalVelocity,
		"fast_fall_multiplier": &p.FastFallMultiplier,
		"jump_velocity":        &p.JumpVelocity,
		"jump_cut_multiplier":  &p.JumpCutMultiplier,
		"coyote_time":          &p.CoyoteTime,
		"jump_buffer":          &p.JumpBuffer,
		"snap_to_ground":       &p.SnapToGround,
		"max_step_px":          &p.MaxStepPx,
		"world_w":              &p.WorldW,
		"world_wrap_mode":      &p.WorldWrapMode,
	}
	for name, v := range values {
		if field, ok := fields[name]; ok {
			*field = float32(v)
		}
	}
}
