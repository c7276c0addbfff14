package scenario

import (
	"testing"

	"github.com/arcadelab/platkit/internal/sim"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"flat", "corridor", "gap"} {
		if !Exists(id) {
			t.Errorf("built-in scenario %q not registered", id)
		}
	}
}

func TestListSortedWithTitles(t *testing.T) {
	infos := List()
	if len(infos) < 3 {
		t.Fatalf("List() returned %d scenarios, want at least 3", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].ID >= infos[i].ID {
			t.Errorf("List() not sorted: %q before %q", infos[i-1].ID, infos[i].ID)
		}
	}
	for _, info := range infos {
		if info.Title == "" {
			t.Errorf("scenario %q has an empty title", info.ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scenario"); err == nil {
		t.Error("Create of an unknown scenario should fail")
	}
}

func TestCreateReturnsFreshCopies(t *testing.T) {
	a, err := Create(Flat)
	if err != nil {
		t.Fatalf("Create(flat) failed: %v", err)
	}
	a.World[0] = sim.NewRect(1, 2, 3, 4)

	b, err := Create(Flat)
	if err != nil {
		t.Fatalf("Create(flat) failed: %v", err)
	}
	if b.World[0] == a.World[0] {
		t.Error("scenario instances must not share world slices")
	}
}

func TestFlatSpawnRestsOnFloor(t *testing.T) {
	sc, err := Create(Flat)
	if err != nil {
		t.Fatalf("Create(flat) failed: %v", err)
	}
	floor := sc.World[0]
	if sc.Spawn.Y+sc.Spawn.H != floor.Y {
		t.Errorf("spawn bottom %v should sit flush on floor top %v", sc.Spawn.Y+sc.Spawn.H, floor.Y)
	}
}
