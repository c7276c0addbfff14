package sim

import "math"

// Fixed tick rate. Every integration in this package consumes DT; hosts call
// Step exactly once per tick.
const (
	Hz = 60
	DT = float32(1.0 / 60.0)
)

// Rising velocity is clamped to this floor rather than left unbounded, so
// upward speed stays finite without a dedicated tuning knob.
const riseClamp = float32(-5000.0)

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// round rounds half away from zero, matching the rounding used by every
// reference trajectory. math.Round on the widened value is exact for any
// float32 input.
func round(x float32) float32 {
	return float32(math.Round(float64(x)))
}

// fmod is the truncated (sign-of-dividend) remainder in single precision.
func fmod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}

// resolveAxisSeparated displaces r by the rounded per-axis deltas and clamps
// it flush against any overlapping world rectangle, correcting only in the
// direction of travel. X is fully resolved before Y; resolving Y first would
// change step-edge behavior against corners. Overlap is re-tested per axis
// rather than reusing a combined check.
func resolveAxisSeparated(r Rect, dx, dy float32, world []Rect) (out Rect, hitGround, hitHead bool) {
	r.X += round(dx)
	for _, p := range world {
		if r.Intersects(p) {
			if dx > 0 {
				r.X = p.X - r.W
			} else if dx < 0 {
				r.X = p.X + p.W
			}
		}
	}

	r.Y += round(dy)
	for _, p := range world {
		if r.Intersects(p) {
			if dy > 0 {
				r.Y = p.Y - r.H
				hitGround = true
			} else if dy < 0 {
				r.Y = p.Y + p.H
				hitHead = true
			}
		}
	}

	return r, hitGround, hitHead
}

// Step advances one actor by exactly one fixed 60Hz tick against the static
// world rectangles. The world slice is read in order; ground-snap probing is
// first-hit-wins, so callers must preserve their world list order. State is
// mutated in place and the returned events are fresh for this tick only.
func Step(params *Params, world []Rect, s *State, buttons Buttons) Events {
	var ev Events

	left := buttons.Has(ButtonLeft)
	right := buttons.Has(ButtonRight)
	down := buttons.Has(ButtonDown)
	run := buttons.Has(ButtonRun)
	jump := buttons.Has(ButtonJump)

	var moveDir float32
	if right {
		moveDir++
	}
	if left {
		moveDir--
	}

	// Jump edge detection
	jumpPressed := jump && !s.JumpWasDown
	jumpReleased := !jump && s.JumpWasDown
	s.JumpWasDown = jump

	wasGrounded := s.Grounded

	// Coyote timer
	if wasGrounded {
		s.Coyote = params.CoyoteTime
	} else {
		s.Coyote = s.Coyote - DT
		if s.Coyote < 0 {
			s.Coyote = 0
		}
	}

	// Jump buffer timer
	if jumpPressed {
		s.JumpBuffer = params.JumpBuffer
	} else {
		s.JumpBuffer = s.JumpBuffer - DT
		if s.JumpBuffer < 0 {
			s.JumpBuffer = 0
		}
	}

	// Horizontal movement: tuning is chosen by the grounded state at tick
	// start, not by where the collision pass ends up.
	runMul := float32(1.0)
	if run {
		runMul = params.RunMultiplier
	}
	var maxSpeed, accel, decel, friction float32
	if wasGrounded {
		maxSpeed = params.GroundMaxSpeed * runMul
		accel = params.GroundAccel
		decel = params.GroundDecel
		friction = params.GroundFriction
	} else {
		maxSpeed = params.AirMaxSpeed * runMul
		accel = params.AirAccel
		decel = params.AirDecel
		friction = 0
	}

	if moveDir != 0 {
		turning := s.VX != 0 && sign(s.VX) != moveDir
		rate := accel
		if turning {
			rate = decel
		}
		s.VX += rate * DT * moveDir
	} else if wasGrounded {
		fr := friction * DT
		if abs(s.VX) <= fr {
			s.VX = 0
		} else {
			s.VX -= sign(s.VX) * fr
		}
	}

	// Air drag
	if !wasGrounded && params.AirDrag > 0 {
		drag := params.AirDrag * DT
		if abs(s.VX) <= drag {
			s.VX = 0
		} else {
			s.VX -= sign(s.VX) * drag
		}
	}

	s.VX = clamp(s.VX, -maxSpeed, maxSpeed)

	// Gravity: rising uses the up gravity, falling or resting the down
	// gravity, optionally scaled by fast fall while DOWN is held.
	g := params.GravityDown
	if s.VY < 0 {
		g = params.GravityUp
	}
	if down && s.VY > 0 {
		g *= params.FastFallMultiplier
	}
	s.VY += g * DT
	s.VY = clamp(s.VY, riseClamp, params.TerminalVelocity)

	// Jump execution. With a zero buffer window configured, a buffered
	// request can never be pending, so a fresh press this tick fires instead.
	canJump := wasGrounded || s.Coyote > 0
	wantsJump := s.JumpBuffer > 0
	if params.JumpBuffer <= 0 {
		wantsJump = jumpPressed
	}
	if canJump && wantsJump {
		s.VY = -params.JumpVelocity
		s.Grounded = false
		s.Coyote = 0
		s.JumpBuffer = 0
		ev.Jumped = true
	}

	// Jump cut: releasing while rising clamps toward zero, never making the
	// velocity more negative than it already is.
	if jumpReleased && s.VY < 0 {
		cut := -params.JumpVelocity * params.JumpCutMultiplier
		if s.VY < cut {
			s.VY = cut
		}
	}

	// Integrate with substeps and axis-separated collisions. The per-substep
	// whole-unit rounding is a determinism anchor: the same substep count and
	// the same rounding must be used by any reimplementation.
	rect := Rect{
		X: round(s.X),
		Y: round(s.Y),
		W: round(s.W),
		H: round(s.H),
	}

	maxStep := params.MaxStepPx
	if maxStep < 1 {
		maxStep = 1
	}
	totalDX := s.VX * DT
	totalDY := s.VY * DT

	span := abs(totalDX)
	if abs(totalDY) > span {
		span = abs(totalDY)
	}
	stepsF := float32(math.Ceil(float64(span / maxStep)))
	if stepsF < 1 {
		stepsF = 1
	}
	steps := int(stepsF)
	dx := totalDX / stepsF
	dy := totalDY / stepsF

	hitGroundAny := false

	for i := 0; i < steps; i++ {
		r2, hitGround, hitHead := resolveAxisSeparated(rect, dx, dy, world)
		rect = r2

		if hitHead && s.VY < 0 {
			s.VY = 0
			ev.Bonked = true
		}
		if hitGround && s.VY > 0 {
			s.VY = 0
		}

		hitGroundAny = hitGroundAny || hitGround
	}

	s.X = rect.X
	s.Y = rect.Y

	// Ground snap: probe a test rect below the post-integration position;
	// the first overlapping world rect wins, and the actor is pulled flush
	// only when its bottom edge already sits within the snap band.
	nowGrounded := false
	if params.SnapToGround > 0 {
		snap := round(params.SnapToGround)
		test := Rect{X: rect.X, Y: rect.Y + snap, W: rect.W, H: rect.H}
		for _, p := range world {
			if test.Intersects(p) {
				nowGrounded = true
				if rect.Y+rect.H <= p.Y+snap {
					rect.Y = p.Y - rect.H
					s.Y = rect.Y
				}
				break
			}
		}
	} else {
		nowGrounded = hitGroundAny
	}

	if nowGrounded && !wasGrounded {
		ev.Landed = true
	}
	s.Grounded = nowGrounded

	// World wrap
	switch int(round(params.WorldWrapMode)) {
	case 1:
		w := params.WorldW
		if w < 1 {
			w = 1
		}
		w = round(w)
		leftEdge := round(s.X)
		rightEdge := leftEdge + round(s.W)
		if leftEdge < 0 {
			leftEdge = w - round(s.W)
		} else if rightEdge > w {
			leftEdge = 0
		}
		s.X = leftEdge
	case 2:
		w := params.WorldW
		if w < 1 {
			w = 1
		}
		center := s.X + 0.5*s.W
		wrapped := fmod(fmod(center, w)+w, w)
		s.X = round(wrapped - 0.5*s.W)
	}

	return ev
}
