package audit

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func tempStore(t *testing.T, retention RetentionConfig) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"), retention)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndList(t *testing.T) {
	s := tempStore(t, DefaultRetentionConfig())

	rec, err := s.Append(Record{
		GroupID:     "g0",
		WindowID:    "w1",
		Outcome:     "commit",
		Action:      "blend",
		Reason:      "all tracked metrics held",
		Deltas:      map[string]float64{"loss": -0.1},
		DatasetHash: "sha256:abc",
		Steps:       10,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if rec.RecordID == "" {
		t.Fatal("expected generated record ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected generated timestamp")
	}

	got, err := s.List("g0", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Outcome != "commit" || got[0].Action != "blend" {
		t.Fatalf("unexpected record: %+v", got[0])
	}
	if got[0].Deltas["loss"] != -0.1 {
		t.Fatalf("deltas not round-tripped: %v", got[0].Deltas)
	}
	if got[0].DatasetHash != "sha256:abc" {
		t.Fatalf("dataset hash not round-tripped: %q", got[0].DatasetHash)
	}
}

func TestListFiltersByGroup(t *testing.T) {
	s := tempStore(t, DefaultRetentionConfig())

	for _, g := range []string{"g0", "g1", "g0"} {
		if _, err := s.Append(Record{GroupID: g, WindowID: "w", Outcome: "reject", Action: "discard"}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := s.List("g0", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 g0 records, got %d", len(got))
	}

	all, err := s.List("", 10)
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
}

func TestRetentionByCount(t *testing.T) {
	s := tempStore(t, RetentionConfig{MaxRecords: 3})

	for i := 0; i < 6; i++ {
		if _, err := s.Append(Record{GroupID: "g0", WindowID: "w", Outcome: "commit", Action: "blend"}); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Fatalf("retention kept %d records, want 3", n)
	}
}

func TestRetentionByAge(t *testing.T) {
	s := tempStore(t, RetentionConfig{MaxAge: time.Hour})

	old := Record{
		GroupID:   "g0",
		WindowID:  "w-old",
		Outcome:   "reject",
		Action:    "discard",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
	if _, err := s.Append(old); err != nil {
		t.Fatalf("Append old: %v", err)
	}
	if _, err := s.Append(Record{GroupID: "g0", WindowID: "w-new", Outcome: "commit", Action: "blend"}); err != nil {
		t.Fatalf("Append new: %v", err)
	}

	got, err := s.List("g0", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].WindowID != "w-new" {
		t.Fatalf("expected only the fresh record, got %+v", got)
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	s := tempStore(t, DefaultRetentionConfig())

	main := []float64{0.1, -2.5, math.Pi, 0}
	cp, err := s.SaveCheckpoint("g0", main, "pre-deploy snapshot")
	if err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	got, err := s.GetCheckpoint(cp.CheckpointID)
	if err != nil {
		t.Fatalf("GetCheckpoint: %v", err)
	}
	if got.GroupID != "g0" || got.Note != "pre-deploy snapshot" {
		t.Fatalf("unexpected checkpoint: %+v", got)
	}
	if len(got.MainValue) != len(main) {
		t.Fatalf("length mismatch: %d", len(got.MainValue))
	}
	for i := range main {
		if got.MainValue[i] != main[i] {
			t.Fatalf("index %d: %v != %v (bit-exact expected)", i, got.MainValue[i], main[i])
		}
	}
}

func TestListCheckpoints(t *testing.T) {
	s := tempStore(t, DefaultRetentionConfig())

	if _, err := s.SaveCheckpoint("g0", []float64{1}, ""); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	if _, err := s.SaveCheckpoint("g1", []float64{2}, ""); err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	got, err := s.ListCheckpoints("g0", 10)
	if err != nil {
		t.Fatalf("ListCheckpoints: %v", err)
	}
	if len(got) != 1 || got[0].GroupID != "g0" {
		t.Fatalf("unexpected checkpoints: %+v", got)
	}
}

func TestGetMissingCheckpoint(t *testing.T) {
	s := tempStore(t, DefaultRetentionConfig())

	if _, err := s.GetCheckpoint("nope"); err == nil {
		t.Fatal("expected error for missing checkpoint")
	}
}
