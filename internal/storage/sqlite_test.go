package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func testRun(name string, ticks int) RunEntry {
	return RunEntry{
		Name:      name,
		Ticks:     ticks,
		Jumped:    1,
		Landed:    2,
		TraceHex:  "94db7b2925cfad14",
		ParityHex: "0000000000000000",
		FinalX:    555,
		FinalY:    436,

		FinalGrounded: true,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(testRun("canonical", 180)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(testRun("canonical", 360)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(testRun("corridor", 60)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("canonical", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 canonical runs, got %d", len(runs))
	}

	// Most recent first
	if runs[0].Ticks != 360 || runs[1].Ticks != 180 {
		t.Errorf("Runs not in recency order: %d, %d", runs[0].Ticks, runs[1].Ticks)
	}
	if runs[0].TraceHex != "94db7b2925cfad14" {
		t.Errorf("trace hash = %q", runs[0].TraceHex)
	}
	if runs[0].FinalX != 555 || runs[0].FinalY != 436 || !runs[0].FinalGrounded {
		t.Errorf("final state round trip failed: %+v", runs[0])
	}
	if runs[0].Jumped != 1 || runs[0].Landed != 2 || runs[0].Bonked != 0 {
		t.Errorf("event totals round trip failed: %+v", runs[0])
	}

	// Empty name returns runs across all names.
	all, err := store.RecentRuns("", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 runs total, got %d", len(all))
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun(testRun("test", (i+1)*60))
	}

	runs, err := store.RecentRuns("test", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Ticks != 300 || runs[1].Ticks != 240 || runs[2].Ticks != 180 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreLastRun(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	last, err := store.LastRun("canonical")
	if err != nil {
		t.Fatalf("LastRun() failed: %v", err)
	}
	if last != nil {
		t.Errorf("Expected nil for empty name, got %+v", last)
	}

	store.SaveRun(testRun("canonical", 180))
	store.SaveRun(testRun("canonical", 360))

	last, err = store.LastRun("canonical")
	if err != nil {
		t.Fatalf("LastRun() failed: %v", err)
	}
	if last == nil || last.Ticks != 360 {
		t.Errorf("Expected latest run with 360 ticks, got %+v", last)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(testRun("canonical", 180))
	store.SaveRun(testRun("canonical", 360))
	store.SaveRun(testRun("corridor", 60))

	if err := store.ClearRuns("canonical"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	canonical, _ := store.RecentRuns("canonical", 10)
	if len(canonical) != 0 {
		t.Errorf("Expected 0 canonical runs after clear, got %d", len(canonical))
	}

	corridor, _ := store.RecentRuns("corridor", 10)
	if len(corridor) != 1 {
		t.Error("Corridor runs should not be affected by clearing canonical")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
