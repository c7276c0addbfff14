package host

import (
	"testing"

	"github.com/arcadelab/platkit/internal/sim"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	st := c.State()
	if st.X != 80 || st.Y != 436 || st.W != 28 || st.H != 44 {
		t.Errorf("default spawn = %+v, want 80/436/28/44", st)
	}
	if len(c.World()) != 1 {
		t.Fatalf("default world has %d rects, want 1", len(c.World()))
	}
	if c.Params() != sim.DefaultParams() {
		t.Error("default params mismatch")
	}
}

func TestResetKeepsParamsAndWorld(t *testing.T) {
	c := New()
	c.SetParams(map[string]any{"jump_velocity": 600.0})
	c.Step(uint8(sim.ButtonRight))

	c.Reset(10, 20, 30, 40)
	st := c.State()
	if st.X != 10 || st.Y != 20 || st.W != 30 || st.H != 40 {
		t.Errorf("reset state = %+v", st)
	}
	if st.VX != 0 || st.VY != 0 || st.Grounded || st.JumpWasDown {
		t.Errorf("reset should zero dynamics, got %+v", st)
	}
	if c.Params().JumpVelocity != 600 {
		t.Error("reset must keep parameters")
	}
	if len(c.World()) != 1 {
		t.Error("reset must keep world geometry")
	}
}

func TestSetWorldPackedQuadruples(t *testing.T) {
	c := New()
	c.SetWorld([]float32{0, 480, 960, 60, 100, 400, 50, 10})
	world := c.World()
	if len(world) != 2 {
		t.Fatalf("world has %d rects, want 2", len(world))
	}
	if world[1] != sim.NewRect(100, 400, 50, 10) {
		t.Errorf("world[1] = %+v", world[1])
	}

	// Trailing partial quadruple is dropped.
	c.SetWorld([]float32{0, 480, 960, 60, 1, 2})
	if len(c.World()) != 1 {
		t.Errorf("partial quadruple should be ignored, got %d rects", len(c.World()))
	}
}

func TestSetParamsAllowlist(t *testing.T) {
	c := New()
	c.SetParams(map[string]any{
		"ground_max_speed": 300.0,
		"world_wrap_mode":  2,
		"no_such_field":    123.0, // ignored
		"jump_velocity":    "fast", // non-numeric, ignored
	})

	p := c.Params()
	if p.GroundMaxSpeed != 300 {
		t.Errorf("ground_max_speed = %v, want 300", p.GroundMaxSpeed)
	}
	if p.WorldWrapMode != sim.WrapTorus {
		t.Errorf("world_wrap_mode = %v, want torus", p.WorldWrapMode)
	}
	if p.JumpVelocity != sim.DefaultParams().JumpVelocity {
		t.Errorf("non-numeric value must be ignored, jump_velocity = %v", p.JumpVelocity)
	}
}

func TestStepSnapshotMirrorsState(t *testing.T) {
	c := New()
	c.SetParams(map[string]any{"world_wrap_mode": 0})

	var snap Snapshot
	for i := 0; i < 5; i++ {
		snap = c.Step(uint8(sim.ButtonRight))
	}

	st := c.State()
	if snap.X != st.X || snap.Y != st.Y || snap.VX != st.VX || snap.VY != st.VY {
		t.Errorf("snapshot %+v does not mirror state %+v", snap, st)
	}
	if !snap.Grounded {
		t.Error("actor should be grounded on the default floor")
	}
	if snap.VX <= 0 {
		t.Errorf("vx = %v, want rightward motion", snap.VX)
	}
}

func TestStepDiscardsUnknownInputBits(t *testing.T) {
	a, b := New(), New()
	a.Step(uint8(sim.ButtonRight))
	b.Step(uint8(sim.ButtonRight) | 0xE0) // junk high bits

	if a.State() != b.State() {
		t.Error("unknown input bits must not affect the simulation")
	}
}
