package sim

// State is the mutable per-actor record. It is owned by the host: the kernel
// never allocates or frees one, only mutates it in place, once per tick.
type State struct {
	X, Y   float32 // top-left position
	VX, VY float32 // velocity, units per second; positive Y is down
	W, H   float32 // actor size

	Grounded bool

	// Jump-assist bookkeeping. Coyote is the remaining grace window after
	// leaving ground; JumpBuffer is the remaining window in which a stored
	// jump press is still honored. JumpWasDown feeds edge detection.
	Coyote      float32
	JumpBuffer  float32
	JumpWasDown bool
}

// NewState creates an actor at the given position and size with zeroed
// dynamics, airborne, all timers expired.
func NewState(x, y, w, h float32) State {
	return State{X: x, Y: y, W: w, H: h}
}

// Bounds returns the actor's current bounding rectangle.
func (s *State) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
}

// Events reports what happened during a single step. Flags are produced
// fresh each call and are not cumulative; hosts aggregate across ticks.
type Events struct {
	Jumped bool // a jump fired this tick
	Landed bool // grounded transitioned from false to true
	Bonked bool // head contact zeroed a rising velocity
}
