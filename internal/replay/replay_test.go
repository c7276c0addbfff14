package replay

import (
	"strings"
	"testing"

	"github.com/arcadelab/platkit/internal/sim"
)

const validDoc = `{
	"params": {"jump_velocity": 600, "world_wrap_mode": 0, "bogus_key": 1},
	"world": [
		{"x": 0, "y": 480, "w": 960, "h": 60}
	],
	"initial_state": {"x": 80, "y": 436, "w": 28, "h": 44, "grounded": 1},
	"inputs": [0, 2, 2, 2, 18]
}`

func TestParseValidDocument(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if doc.Params.JumpVelocity != 600 {
		t.Errorf("jump_velocity override = %v, want 600", doc.Params.JumpVelocity)
	}
	if doc.Params.WorldWrapMode != sim.WrapOff {
		t.Errorf("world_wrap_mode override = %v, want off", doc.Params.WorldWrapMode)
	}
	// Unnamed params keep their defaults; unknown keys are ignored.
	if doc.Params.GroundMaxSpeed != sim.DefaultParams().GroundMaxSpeed {
		t.Errorf("ground_max_speed = %v, want default", doc.Params.GroundMaxSpeed)
	}

	if len(doc.World) != 1 || doc.World[0] != sim.NewRect(0, 480, 960, 60) {
		t.Errorf("world = %+v", doc.World)
	}
	if !doc.Initial.Grounded {
		t.Error("initial grounded flag lost")
	}
	if doc.Initial.VX != 0 || doc.Initial.VY != 0 {
		t.Error("omitted dynamics should default to zero")
	}

	if len(doc.Inputs) != 5 {
		t.Fatalf("inputs = %d ticks, want 5", len(doc.Inputs))
	}
	if doc.Inputs[1] != sim.ButtonRight {
		t.Errorf("inputs[1] = %v, want RIGHT", doc.Inputs[1])
	}
	if doc.Inputs[4] != sim.ButtonRight|sim.ButtonJump {
		t.Errorf("inputs[4] = %v, want RIGHT|JUMP", doc.Inputs[4])
	}
}

func TestParseMissingSectionsFailLoudly(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{
			"no world",
			`{"initial_state": {"x":0,"y":0,"w":1,"h":1}, "inputs": [0]}`,
			`"world"`,
		},
		{
			"no initial state",
			`{"world": [], "inputs": [0]}`,
			`"initial_state"`,
		},
		{
			"no inputs",
			`{"world": [], "initial_state": {"x":0,"y":0,"w":1,"h":1}}`,
			`"inputs"`,
		},
	}

	for _, tc := range cases {
		_, err := Parse([]byte(tc.doc))
		if err == nil {
			t.Errorf("%s: Parse() should fail", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not name %s", tc.name, err, tc.want)
		}
	}
}

func TestParseIncompleteRect(t *testing.T) {
	doc := `{
		"world": [{"x": 0, "y": 480, "w": 960}],
		"initial_state": {"x":0,"y":0,"w":1,"h":1},
		"inputs": [0]
	}`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "world[0]") {
		t.Errorf("incomplete rect should fail naming the entry, got %v", err)
	}
}

func TestParseIncompleteInitialState(t *testing.T) {
	doc := `{
		"world": [],
		"initial_state": {"x": 0, "y": 0, "w": 1},
		"inputs": [0]
	}`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), `"h"`) {
		t.Errorf("missing height should fail naming the field, got %v", err)
	}
}

func TestParseInputOutOfRange(t *testing.T) {
	doc := `{
		"world": [],
		"initial_state": {"x":0,"y":0,"w":1,"h":1},
		"inputs": [0, 300]
	}`
	_, err := Parse([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "inputs[1]") {
		t.Errorf("out-of-range input should fail naming the tick, got %v", err)
	}
}

func TestRunCanonicalScenario(t *testing.T) {
	inputs := make([]int, 180)
	for i := range inputs {
		if i < 120 {
			inputs[i] |= int(sim.ButtonRight)
		}
		if i == 10 {
			inputs[i] |= int(sim.ButtonJump)
		}
	}

	doc := &Document{
		Params:  sim.DefaultParams(),
		World:   []sim.Rect{sim.NewRect(0, 480, 960, 60)},
		Initial: sim.NewState(80, 436, 28, 44),
	}
	for _, bits := range inputs {
		doc.Inputs = append(doc.Inputs, sim.ButtonsFromBits(uint8(bits)))
	}

	var rows int
	res := Run(doc, func(r Row) {
		if r.Tick != rows {
			t.Fatalf("row tick %d out of order (want %d)", r.Tick, rows)
		}
		rows++
	})

	if rows != 180 || res.Ticks != 180 {
		t.Fatalf("rows=%d ticks=%d, want 180", rows, res.Ticks)
	}
	if res.Jumped != 1 || res.Landed != 2 || res.Bonked != 0 {
		t.Errorf("events = %d/%d/%d, want 1/2/0", res.Jumped, res.Landed, res.Bonked)
	}
	if res.Final.X != 555 || res.Final.Y != 436 {
		t.Errorf("final position = (%v,%v), want (555,436)", res.Final.X, res.Final.Y)
	}

	const wantTrace uint64 = 0x94db7b2925cfad14
	if res.TraceHash != wantTrace {
		t.Errorf("trace hash = %#016x, want %#016x", res.TraceHash, wantTrace)
	}

	// Repeat run over the same document: identical hashes.
	again := Run(doc, nil)
	if again.TraceHash != res.TraceHash || again.ParityHash != res.ParityHash {
		t.Error("replay runs over one document must be repeatable")
	}
}
