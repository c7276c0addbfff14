package sim

// World wrap modes. Stored as a float32 field so Params keeps a uniform
// fixed layout across host boundaries; the kernel rounds before comparing.
const (
	WrapOff   float32 = 0 // no wrapping
	WrapEdge  float32 = 1 // teleport to the opposite edge once the box fully exits
	WrapTorus float32 = 2 // wrap the horizontal center through a true modulo torus
)

// Params is the flat tuning record consumed by Step. It is immutable per
// call: the kernel never writes to it, and hosts may share one value across
// actors. All fields are single precision to keep a stable fixed layout.
//
// No field may be NaN; that is caller responsibility, not a checked error.
type Params struct {
	// Ground movement
	GroundMaxSpeed float32
	GroundAccel    float32
	GroundDecel    float32
	GroundFriction float32
	RunMultiplier  float32

	// Air movement
	AirMaxSpeed float32
	AirAccel    float32
	AirDecel    float32
	AirDrag     float32

	// Vertical
	GravityUp          float32
	GravityDown        float32
	TerminalVelocity   float32
	FastFallMultiplier float32

	// Jump
	JumpVelocity      float32
	JumpCutMultiplier float32
	CoyoteTime        float32
	JumpBuffer        float32

	// Collision stepping / grounding
	SnapToGround float32
	MaxStepPx    float32 // clamped to >= 1 before use

	// World
	WorldW        float32 // clamped to >= 1 before use
	WorldWrapMode float32 // one of WrapOff, WrapEdge, WrapTorus
}

// DefaultParams returns the documented default tuning (the extended shape).
func DefaultParams() Params {
	return Params{
		GroundMaxSpeed: 260.0,
		GroundAccel:    1800.0,
		GroundDecel:    2200.0,
		GroundFriction: 2600.0,
		RunMultiplier:  1.35,

		AirMaxSpeed: 220.0,
		AirAccel:    1200.0,
		AirDecel:    900.0,
		AirDrag:     0.0,

		GravityUp:          1500.0,
		GravityDown:        2300.0,
		TerminalVelocity:   1200.0,
		FastFallMultiplier: 1.35,

		JumpVelocity:      520.0,
		JumpCutMultiplier: 0.45,
		CoyoteTime:        0.085,
		JumpBuffer:        0.100,

		SnapToGround: 6.0,
		MaxStepPx:    6.0,

		WorldW:        960.0,
		WorldWrapMode: WrapEdge,
	}
}

// MinimalParams builds the reduced parameter shape: one max-speed/accel/
// friction triple drives both grounded and airborne movement, reversal uses
// the acceleration rate, there are no assist timers (jumps fire only on a
// fresh press while grounded), jump cut is disabled, and the world always
// wraps as a center-based torus of the given width.
func MinimalParams(maxSpeed, accel, friction, jumpVelocity, worldW float32) Params {
	p := DefaultParams()

	p.GroundMaxSpeed = maxSpeed
	p.GroundAccel = accel
	p.GroundDecel = accel
	p.GroundFriction = friction
	p.RunMultiplier = 1.0

	p.AirMaxSpeed = maxSpeed
	p.AirAccel = accel
	p.AirDecel = accel
	p.AirDrag = 0.0

	p.JumpVelocity = jumpVelocity
	p.JumpCutMultiplier = 1.0
	p.CoyoteTime = 0.0
	p.JumpBuffer = 0.0

	p.WorldW = worldW
	p.WorldWrapMode = WrapTorus

	return p
}
