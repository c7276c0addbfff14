// Package sim implements the deterministic fixed-timestep movement and
// collision kernel. It contains no external dependencies so the step math
// stays pure, portable and testable; every rounding point and clamp in this
// package is part of the cross-host reproducibility contract, not an
// implementation detail.
package sim

// Rect is an axis-aligned rectangle in world units, single precision.
// Width and height are expected to be non-negative.
type Rect struct {
	X, Y float32 // Top-left corner position
	W, H float32 // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// Intersects reports whether two rectangles overlap.
// The test is open-interval on both axes: touching edges do not count, a
// zero-area rectangle overlaps only when its point lies strictly inside the
// other, and it never intersects itself.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}
