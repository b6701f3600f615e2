package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/commit"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Commit.WindowSteps = 3
	cfg.Commit.Chi = 0.5
	cfg.Schema = commit.Schema{{Name: "loss", Direction: commit.LowerIsBetter}}
	return cfg
}

func newTestEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func lossReport(main, shadow float64) commit.Report {
	return commit.Report{
		Main:        map[string]float64{"loss": main},
		Shadow:      map[string]float64{"loss": shadow},
		DatasetHash: "sha256:test",
	}
}

func fillWindow(t *testing.T, e *Engine, id string) {
	t.Helper()
	snap, err := e.SnapshotGroup(id)
	if err != nil {
		t.Fatalf("SnapshotGroup: %v", err)
	}
	act := make([]float64, len(snap.MainValue))
	grad := make([]float64, len(snap.MainValue))
	for i := range act {
		act[i] = 0.5
		grad[i] = 0.5
	}
	for {
		res, err := e.Step(id, act, grad)
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if res.WindowFull {
			return
		}
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"alpha too high", func(c *Config) { c.Trace.Alpha = 1.0 }},
		{"negative beta", func(c *Config) { c.Trace.Beta = -0.1 }},
		{"zero input clamp", func(c *Config) { c.Trace.InputClamp = 0 }},
		{"kappa out of range", func(c *Config) { c.Gate.Kappa = 1.5 }},
		{"zero temperature", func(c *Config) { c.Gate.Temperature = 0 }},
		{"lambda too high", func(c *Config) { c.Eligibility.Lambda = 1.0 }},
		{"rho too high", func(c *Config) { c.Budget.Rho = 1.0 }},
		{"zero budget floor", func(c *Config) { c.Budget.Floor = 0 }},
		{"unknown driver", func(c *Config) { c.Shadow.Driver = "momentum" }},
		{"zero window", func(c *Config) { c.Commit.WindowSteps = 0 }},
		{"chi too high", func(c *Config) { c.Commit.Chi = 1.5 }},
		{"empty schema", func(c *Config) { c.Schema = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			_, err := New(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %T: %v", err, err)
			}
		})
	}

	if _, err := New(DefaultConfig()); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestAddGroup(t *testing.T) {
	e := newTestEngine(t, testConfig())

	if err := e.AddGroup("g0", []float64{1, 2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if err := e.AddGroup("g0", []float64{1, 2}); !errors.Is(err, ErrGroupExists) {
		t.Fatalf("expected ErrGroupExists, got %v", err)
	}
	if err := e.AddGroup("", []float64{1}); err == nil {
		t.Fatal("expected error for empty ID")
	}
	if err := e.AddGroup("g1", nil); err == nil {
		t.Fatal("expected error for empty vector")
	}
	if _, err := e.Step("missing", []float64{0}, []float64{0}); !errors.Is(err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", err)
	}

	got := e.Groups()
	if len(got) != 1 || got[0] != "g0" {
		t.Fatalf("unexpected groups: %v", got)
	}
}

func TestStepMovesShadowNotMain(t *testing.T) {
	e := newTestEngine(t, testConfig())
	main := []float64{1, 2}
	if err := e.AddGroup("g0", main); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	res, err := e.Step("g0", []float64{0.5, 0.5}, []float64{0.5, -0.5})
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if res.Unstable {
		t.Fatal("finite inputs flagged unstable")
	}
	if res.Steps != 1 || res.WindowID == "" {
		t.Fatalf("unexpected step result: %+v", res)
	}

	snap, err := e.SnapshotGroup("g0")
	if err != nil {
		t.Fatalf("SnapshotGroup: %v", err)
	}
	for i := range main {
		if snap.MainValue[i] != main[i] {
			t.Fatalf("main moved at %d: %v", i, snap.MainValue[i])
		}
		if snap.ShadowValue[i] == main[i] {
			t.Fatalf("shadow did not move at %d", i)
		}
	}
}

func TestStepLengthMismatch(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1, 2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := e.Step("g0", []float64{0.5}, []float64{0.5, 0.5}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestWindowCommitLifecycle(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1, 2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	fillWindow(t, e, "g0")

	// The full window refuses further steps until the decision lands.
	if _, err := e.Step("g0", []float64{0, 0}, []float64{0, 0}); !errors.Is(err, commit.ErrEvaluating) {
		t.Fatalf("expected ErrEvaluating, got %v", err)
	}

	before, err := e.SnapshotGroup("g0")
	if err != nil {
		t.Fatalf("SnapshotGroup: %v", err)
	}

	dec, err := e.Evaluate("g0", lossReport(0.5, 0.4))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if dec.Outcome != commit.OutcomeCommit || dec.Action != commit.ActionBlend {
		t.Fatalf("unexpected decision: %+v", dec)
	}
	if dec.Steps != 3 {
		t.Fatalf("decision steps = %d, want 3", dec.Steps)
	}

	after, err := e.SnapshotGroup("g0")
	if err != nil {
		t.Fatalf("SnapshotGroup: %v", err)
	}
	for i := range before.MainValue {
		want := before.MainValue[i] + 0.5*(before.ShadowValue[i]-before.MainValue[i])
		if after.MainValue[i] != want {
			t.Fatalf("blend at %d: got %v, want %v", i, after.MainValue[i], want)
		}
		if after.ShadowValue[i] != after.MainValue[i] {
			t.Fatalf("shadow not reset to main at %d", i)
		}
	}
	if e.RejectedRatio() != 0 {
		t.Fatalf("rejected ratio = %v after a commit", e.RejectedRatio())
	}

	// Accumulation resumes immediately.
	if _, err := e.Step("g0", []float64{0.1, 0.1}, []float64{0.1, 0.1}); err != nil {
		t.Fatalf("Step after commit: %v", err)
	}
}

func TestWindowRejectRollsBack(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1, 2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	fillWindow(t, e, "g0")

	before, _ := e.SnapshotGroup("g0")

	dec, err := e.Evaluate("g0", lossReport(0.5, 0.6))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if dec.Outcome != commit.OutcomeReject || dec.Action != commit.ActionDiscard {
		t.Fatalf("unexpected decision: %+v", dec)
	}

	after, _ := e.SnapshotGroup("g0")
	for i := range before.MainValue {
		if after.MainValue[i] != before.MainValue[i] {
			t.Fatalf("main changed on reject at %d", i)
		}
		if after.ShadowValue[i] != after.MainValue[i] {
			t.Fatalf("shadow not rolled back at %d", i)
		}
	}
	if e.RejectedRatio() != 1 {
		t.Fatalf("rejected ratio = %v, want 1", e.RejectedRatio())
	}
}

func TestEvaluateDeferred(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := e.Evaluate("g0", lossReport(0.5, 0.4)); !errors.Is(err, commit.ErrNotEvaluating) {
		t.Fatalf("expected ErrNotEvaluating, got %v", err)
	}

	fillWindow(t, e, "g0")
	if _, err := e.Evaluate("g0", commit.Report{Exhausted: true}); !errors.Is(err, commit.ErrDeferred) {
		t.Fatalf("expected ErrDeferred, got %v", err)
	}

	dec, err := e.Evaluate("g0", lossReport(0.5, 0.4))
	if err != nil {
		t.Fatalf("Evaluate after deferral: %v", err)
	}
	if dec.Outcome != commit.OutcomeCommit {
		t.Fatalf("unexpected outcome: %v", dec.Outcome)
	}
}

func TestCancelRollsBack(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1, 2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := e.Step("g0", []float64{0.5, 0.5}, []float64{0.5, 0.5}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	dec, err := e.Cancel("g0", "operator abort")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if dec.FailureKind != commit.FailureCancelled || dec.Outcome != commit.OutcomeReject {
		t.Fatalf("unexpected decision: %+v", dec)
	}

	snap, _ := e.SnapshotGroup("g0")
	for i := range snap.MainValue {
		if snap.ShadowValue[i] != snap.MainValue[i] {
			t.Fatalf("shadow not discarded at %d", i)
		}
	}
	if _, err := e.Step("g0", []float64{0.1, 0.1}, []float64{0.1, 0.1}); err != nil {
		t.Fatalf("Step after cancel: %v", err)
	}
}

func TestTriggerEvaluationEarly(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := e.Step("g0", []float64{0.5}, []float64{0.5}); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := e.TriggerEvaluation("g0"); err != nil {
		t.Fatalf("TriggerEvaluation: %v", err)
	}
	if _, err := e.Step("g0", []float64{0}, []float64{0}); !errors.Is(err, commit.ErrEvaluating) {
		t.Fatalf("expected ErrEvaluating, got %v", err)
	}

	dec, err := e.Evaluate("g0", lossReport(0.5, 0.4))
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if dec.Steps != 1 {
		t.Fatalf("decision steps = %d, want 1", dec.Steps)
	}
}

func TestWatchdogFreezesGroup(t *testing.T) {
	cfg := testConfig()
	cfg.Commit.WindowSteps = 1
	cfg.Watchdog = commit.WatchdogConfig{VarianceBound: 1e-4, HistoryWindows: 4}
	e := newTestEngine(t, cfg)
	if err := e.AddGroup("g0", []float64{1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	fillWindow(t, e, "g0")
	if _, err := e.Evaluate("g0", lossReport(0.5, 0.4)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	fillWindow(t, e, "g0")
	// Wild swing in the delta trips the variance bound.
	if _, err := e.Evaluate("g0", lossReport(0.5, 1.5)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	frozen, err := e.Frozen("g0")
	if err != nil {
		t.Fatalf("Frozen: %v", err)
	}
	if !frozen {
		t.Fatal("expected group to be frozen")
	}
	if _, err := e.Step("g0", []float64{0}, []float64{0}); !errors.Is(err, commit.ErrFrozen) {
		t.Fatalf("expected ErrFrozen, got %v", err)
	}
}

func TestStepAllIsolatesGroups(t *testing.T) {
	e := newTestEngine(t, testConfig())
	for _, id := range []string{"g0", "g1"} {
		if err := e.AddGroup(id, []float64{1, 2}); err != nil {
			t.Fatalf("AddGroup %s: %v", id, err)
		}
	}

	in := StepInput{Activation: []float64{0.5, 0.5}, Gradient: []float64{0.5, 0.5}}
	out := e.StepAll(map[string]StepInput{"g0": in, "g1": in, "missing": in})
	if len(out) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(out))
	}
	for _, id := range []string{"g0", "g1"} {
		if out[id].Err != nil {
			t.Fatalf("group %s: %v", id, out[id].Err)
		}
		if out[id].Result.Steps != 1 {
			t.Fatalf("group %s steps = %d", id, out[id].Result.Steps)
		}
	}
	if !errors.Is(out["missing"].Err, ErrUnknownGroup) {
		t.Fatalf("expected ErrUnknownGroup, got %v", out["missing"].Err)
	}
	if e.Steps() != 2 {
		t.Fatalf("total steps = %d, want 2", e.Steps())
	}
}

func TestDecisionsRecorded(t *testing.T) {
	store, err := audit.NewStore(filepath.Join(t.TempDir(), "test.db"), audit.DefaultRetentionConfig())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var stream bytes.Buffer
	e := newTestEngine(t, testConfig())
	e.AuditTo(store)
	e.LogDecisionsTo(&stream)
	if err := e.AddGroup("g0", []float64{1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	fillWindow(t, e, "g0")
	if _, err := e.Evaluate("g0", lossReport(0.5, 0.4)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	fillWindow(t, e, "g0")
	if _, err := e.Evaluate("g0", lossReport(0.5, 0.6)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	recs, err := store.List("g0", 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 audit records, got %d", len(recs))
	}
	if recs[0].Outcome != "reject" || recs[1].Outcome != "commit" {
		t.Fatalf("unexpected record order: %s, %s", recs[0].Outcome, recs[1].Outcome)
	}
	if recs[0].DatasetHash != "sha256:test" {
		t.Fatalf("dataset hash not recorded: %q", recs[0].DatasetHash)
	}

	lines := strings.Split(strings.TrimRight(stream.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 stream lines, got %d", len(lines))
	}
	var entry struct {
		Outcome string `json:"outcome"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal stream line: %v", err)
	}
	if entry.Outcome != "commit" {
		t.Fatalf("first stream outcome = %q", entry.Outcome)
	}
}

func TestCheckpointPinRestoresMain(t *testing.T) {
	store, err := audit.NewStore(filepath.Join(t.TempDir(), "test.db"), audit.DefaultRetentionConfig())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	e := newTestEngine(t, testConfig())
	e.AuditTo(store)
	original := []float64{1, 2}
	if err := e.AddGroup("g0", original); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	cp, err := e.SaveCheckpoint("g0", "pre-run")
	if err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}

	fillWindow(t, e, "g0")
	if _, err := e.Evaluate("g0", lossReport(0.5, 0.4)); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	moved, _ := e.MainValue("g0")
	if moved[0] == original[0] && moved[1] == original[1] {
		t.Fatal("commit did not move main")
	}

	if err := e.PinCheckpoint("g0", cp.CheckpointID); err != nil {
		t.Fatalf("PinCheckpoint: %v", err)
	}
	restored, _ := e.MainValue("g0")
	for i := range original {
		if restored[i] != original[i] {
			t.Fatalf("pin not bit-exact at %d: %v != %v", i, restored[i], original[i])
		}
	}

	if err := e.PinCheckpoint("g0", "missing"); err == nil {
		t.Fatal("expected error for missing checkpoint")
	}
}

func TestPinRejectsForeignCheckpoint(t *testing.T) {
	store, err := audit.NewStore(filepath.Join(t.TempDir(), "test.db"), audit.DefaultRetentionConfig())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	e := newTestEngine(t, testConfig())
	e.AuditTo(store)
	if err := e.AddGroup("g0", []float64{1}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if err := e.AddGroup("g1", []float64{2}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}

	cp, err := e.SaveCheckpoint("g0", "")
	if err != nil {
		t.Fatalf("SaveCheckpoint: %v", err)
	}
	if err := e.PinCheckpoint("g1", cp.CheckpointID); err == nil {
		t.Fatal("expected cross-group pin to fail")
	}
}

func TestRefractoryHistogram(t *testing.T) {
	e := newTestEngine(t, testConfig())
	if err := e.AddGroup("g0", []float64{1, 2, 3}); err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	if _, err := e.Step("g0", []float64{0.5, 0.5, 0.5}, []float64{0.5, 0.5, 0.5}); err != nil {
		t.Fatalf("Step: %v", err)
	}

	hist, err := e.RefractoryHistogram("g0", 10)
	if err != nil {
		t.Fatalf("RefractoryHistogram: %v", err)
	}
	total := 0
	for _, n := range hist {
		total += n
	}
	if total != 3 {
		t.Fatalf("histogram counted %d parameters, want 3", total)
	}

	if _, err := e.RefractoryHistogram("g0", 0); err == nil {
		t.Fatal("expected error for zero bins")
	}
}
