package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"github.com/michaelscutari/mv123/internal/db"
	"github.com/michaelscutari/mv123/internal/rename"
)

func testPlan() *rename.Plan {
	return &rename.Plan{
		Directory: "/music",
		Filter:    `^[^.].*`,
		Pairs: []rename.Pair{
			{Old: "/music/1.mp3", New: "/music/1.mp3"},
			{Old: "/music/a4.mp3", New: "/music/2.mp3"},
			{Old: "/music/a5.mp3", New: "/music/3.mp3"},
		},
	}
}

func TestFromPlanOnlyChangedPairs(t *testing.T) {
	start := time.Unix(100, 0)
	run, renames := FromPlan(testPlan(), 2, start, start.Add(time.Second), nil)

	if run.Total != 3 || run.Changed != 2 || !run.Applied {
		t.Fatalf("unexpected run: %+v", run)
	}
	if len(renames) != 2 {
		t.Fatalf("expected 2 renames, got %d", len(renames))
	}
	if renames[0].Seq != 1 || renames[0].OldPath != "/music/a4.mp3" {
		t.Fatalf("unexpected first rename: %+v", renames[0])
	}
}

func TestFromPlanPartialApply(t *testing.T) {
	start := time.Unix(100, 0)
	run, renames := FromPlan(testPlan(), 1, start, start, errors.New("boom"))

	if run.Error != "boom" {
		t.Fatalf("expected error recorded, got %q", run.Error)
	}
	if len(renames) != 1 || renames[0].NewPath != "/music/2.mp3" {
		t.Fatalf("unexpected renames: %+v", renames)
	}
}

func TestRecordThenOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "journal.db")
	m := NewManager(path, 0)
	ctx := context.Background()

	start := time.UnixMilli(1_700_000_000_000)
	run, renames := FromPlan(testPlan(), 2, start, start.Add(time.Second), nil)
	id, err := m.Record(ctx, run, renames)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated run id")
	}

	database, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	runs, err := db.ListRuns(ctx, database, 10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != id {
		t.Fatalf("unexpected runs: %+v", runs)
	}

	loaded, err := db.LoadRenames(ctx, database, id)
	if err != nil {
		t.Fatalf("load renames: %v", err)
	}
	if len(loaded) != 2 || loaded[1].OldPath != "/music/a5.mp3" {
		t.Fatalf("unexpected renames: %+v", loaded)
	}
}

func TestRecordPrunesByRetention(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	m := NewManager(path, 2)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		start := time.UnixMilli(int64(i+1) * 1000)
		run, renames := FromPlan(testPlan(), 2, start, start, nil)
		run.ID = fmt.Sprintf("run-%d", i)
		if _, err := m.Record(ctx, run, renames); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	database, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer database.Close()

	runs, err := db.ListRuns(ctx, database, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "run-3" || runs[1].ID != "run-2" {
		t.Fatalf("unexpected runs after retention: %+v", runs)
	}
}

func TestRecordFailsWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	held := flock.New(path + ".lock")
	if err := held.Lock(); err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer held.Unlock()

	m := NewManager(path, 0)
	m.SetLockTimeout(100 * time.Millisecond)
	run, renames := FromPlan(testPlan(), 2, time.Now(), time.Now(), nil)
	if _, err := m.Record(context.Background(), run, renames); err == nil {
		t.Fatalf("expected lock failure")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no database to be created, got %v", err)
	}
}

func TestOpenMissingJournal(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	if !errors.Is(err, ErrNoJournal) {
		t.Fatalf("expected ErrNoJournal, got %v", err)
	}
}
