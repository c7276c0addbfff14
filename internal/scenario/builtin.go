package scenario

import "github.com/arcadelab/platkit/internal/sim"

// Flat is the canonical parity scenario: one floor slab, actor resting on
// it. Conformance traces across reimplementations are recorded against this
// exact world.
const Flat = "flat"

// Default spawn used by all built-in scenarios.
func defaultSpawn() sim.State {
	return sim.NewState(80, 480-44, 28, 44)
}

func init() {
	Register(Flat, func() Scenario {
		return Scenario{
			ID:     Flat,
			Title:  "Flat floor (parity reference)",
			Params: sim.DefaultParams(),
			World: []sim.Rect{
				sim.NewRect(0, 480, 960, 60),
			},
			Spawn: defaultSpawn(),
		}
	})

	Register("corridor", func() Scenario {
		return Scenario{
			ID:     "corridor",
			Title:  "Floor with a low ceiling segment",
			Params: sim.DefaultParams(),
			World: []sim.Rect{
				sim.NewRect(0, 480, 960, 60),
				sim.NewRect(320, 396, 320, 16),
			},
			Spawn: defaultSpawn(),
		}
	})

	Register("gap", func() Scenario {
		return Scenario{
			ID:     "gap",
			Title:  "Split floor with a pit and a step block",
			Params: sim.DefaultParams(),
			World: []sim.Rect{
				sim.NewRect(0, 480, 400, 60),
				sim.NewRect(560, 480, 400, 60),
				sim.NewRect(700, 440, 80, 40),
			},
			Spawn: defaultSpawn(),
		}
	})
}
