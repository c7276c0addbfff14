package sim

// Buttons is the per-tick input snapshot: a bit-set over the logical
// controller buttons. It is sampled fresh each tick by the host; edge
// detection lives in State, never here.
type Buttons uint8

const (
	ButtonLeft  Buttons = 1 << 0
	ButtonRight Buttons = 1 << 1
	ButtonDown  Buttons = 1 << 2 // fast fall while falling
	ButtonRun   Buttons = 1 << 3 // applies the run multiplier
	ButtonJump  Buttons = 1 << 4
)

// Has reports whether all bits in flag are set.
func (b Buttons) Has(flag Buttons) bool {
	return b&flag == flag
}

// ButtonsFromBits converts a raw byte from a host boundary into a Buttons
// value, discarding any bits outside the known button range.
func ButtonsFromBits(bits uint8) Buttons {
	const known = ButtonLeft | ButtonRight | ButtonDown | ButtonRun | ButtonJump
	return Buttons(bits) & known
}
