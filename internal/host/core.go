// Package host provides the stateful managed-host binding around the
// kernel: a wrapper object owning parameters, actor state and world
// geometry, with a plain key/value step result. Hosts that cannot hold the
// kernel types directly (embedders, scripting bridges) talk to this surface;
// structural validation of their input ends here and never reaches the
// kernel.
package host

import "github.com/arcadelab/platkit/internal/sim"

// Core owns one actor's simulation: parameters, state and static world.
// It is not safe for concurrent use; hosts serialize calls per actor.
type Core struct {
	params sim.Params
	state  sim.State
	world  []sim.Rect
}

// New creates a core with the documented defaults: the reference flat-floor
// world and the standard spawn.
func New() *Core {
	return &Core{
		params: sim.DefaultParams(),
		state:  sim.NewState(80, 480-44, 28, 44),
		world:  []sim.Rect{sim.NewRect(0, 480, 960, 60)},
	}
}

// Reset places the actor at the given position and size with zeroed
// dynamics. Parameters and world geometry are kept.
func (c *Core) Reset(x, y, w, h float32) {
	c.state = sim.NewState(x, y, w, h)
}

// SetWorld replaces the world geometry from a flat packed list of
// [x,y,w,h, x,y,w,h, ...] quadruples. A trailing partial quadruple is
// ignored. List order is preserved; it is part of the ground-snap contract.
func (c *Core) SetWorld(packed []float32) {
	c.world = c.world[:0]
	for i := 0; i+4 <= len(packed); i += 4 {
		c.world = append(c.world, sim.NewRect(packed[i], packed[i+1], packed[i+2], packed[i+3]))
	}
}

// SetParams bulk-updates parameters by snake_case field name. Unknown names
// and non-numeric values are silently ignored. This is an explicit field
// table, not reflection: the allowlist is the binding contract.
func (c *Core) SetParams(values map[string]any) {
	fields := c.paramFields()
	for name, raw := range values {
		field, ok := fields[name]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case float64:
			*field = float32(v)
		case float32:
			*field = v
		case int:
			*field = float32(v)
		}
	}
}

// paramFields maps wire names to parameter fields, 1:1 with the replay
// document's params section.
func (c *Core) paramFields() map[string]*float32 {
	p := &c.params
	return map[string]*float32{
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
}

// Params returns a copy of the current parameters.
func (c *Core) Params() sim.Params {
	return c.params
}

// SetParamsStruct replaces the whole parameter record.
func (c *Core) SetParamsStruct(p sim.Params) {
	c.params = p
}

// State returns a copy of the current actor state.
func (c *Core) State() sim.State {
	return c.state
}

// World returns the current world geometry. The returned slice is the
// core's own; callers must not mutate it.
func (c *Core) World() []sim.Rect {
	return c.world
}

// Snapshot mirrors the actor state plus the step's event flags as a plain
// key/value record for managed hosts.
type Snapshot struct {
	X        float32 `json:"x"`
	Y        float32 `json:"y"`
	VX       float32 `json:"vx"`
	VY       float32 `json:"vy"`
	Grounded bool    `json:"grounded"`
	Jumped   bool    `json:"jumped"`
	Landed   bool    `json:"landed"`
	Bonked   bool    `json:"bonked"`
}

// Step advances the simulation by one fixed tick. Raw input bits outside
// the known button range are discarded before they reach the kernel.
func (c *Core) Step(bits uint8) Snapshot {
	ev := sim.Step(&c.params, c.world, &c.state, sim.ButtonsFromBits(bits))
	return Snapshot{
		X:        c.state.X,
		Y:        c.state.Y,
		VX:       c.state.VX,
		VY:       c.state.VY,
		Grounded: c.state.Grounded,
		Jumped:   ev.Jumped,
		Landed:   ev.Landed,
		Bonked:   ev.Bonked,
	}
}
