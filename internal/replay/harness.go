package replay

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/engine"
)

// #region types
// Result captures the outcome of replaying one fixture window.
type Result struct {
	WindowIndex int
	Expected    string
	Actual      string
	Reason      string
	Match       bool
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalWindows int
	Commits      int
	Rejects      int
	Mismatches   int
	FinalMain    []float64
}

// #endregion types

// #region replay
// Replay runs every fixture window through a fresh engine: steps accumulate
// into the window, the window is triggered, and the recorded metrics resolve
// it. Operates entirely in-memory.
func Replay(f *Fixture) ([]Result, Summary, error) {
	eng, err := engine.New(f.ToEngineConfig())
	if err != nil {
		return nil, Summary{}, fmt.Errorf("replay engine: %w", err)
	}
	const groupID = "replay"
	if err := eng.AddGroup(groupID, f.Params); err != nil {
		return nil, Summary{}, err
	}

	results := make([]Result, 0, len(f.Windows))
	for i, w := range f.Windows {
		for j, step := range w.Steps {
			if _, err := eng.Step(groupID, step.Activation, step.Gradient); err != nil {
				return nil, Summary{}, fmt.Errorf("window %d step %d: %w", i, j, err)
			}
		}
		// A window that recorded exactly window_steps steps is already
		// awaiting its decision when the last step lands.
		if err := eng.TriggerEvaluation(groupID); err != nil && !errors.Is(err, commit.ErrEvaluating) {
			return nil, Summary{}, fmt.Errorf("window %d trigger: %w", i, err)
		}

		dec, err := eng.Evaluate(groupID, commit.Report{
			Main:        w.MainMetrics,
			Shadow:      w.ShadowMetrics,
			DatasetHash: w.DatasetHash,
		})
		if err != nil {
			return nil, Summary{}, fmt.Errorf("window %d evaluate: %w", i, err)
		}

		results = append(results, Result{
			WindowIndex: i,
			Expected:    w.ExpectedOutcome,
			Actual:      string(dec.Outcome),
			Reason:      dec.Reason,
			Match:       w.ExpectedOutcome == "" || w.ExpectedOutcome == string(dec.Outcome),
		})
	}

	final, err := eng.MainValue(groupID)
	if err != nil {
		return nil, Summary{}, err
	}
	return results, Summarize(results, final), nil
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result, finalMain []float64) Summary {
	s := Summary{
		TotalWindows: len(results),
		FinalMain:    finalMain,
	}
	for _, r := range results {
		switch r.Actual {
		case "commit":
			s.Commits++
		case "reject":
			s.Rejects++
		}
		if !r.Match {
			s.Mismatches++
		}
	}
	return s
}

// #endregion replay

// #region audit-verify
// AuditCheck is the result of re-deriving one audit record's decision from
// its stored metric results.
type AuditCheck struct {
	RecordID   string
	WindowID   string
	Outcome    string
	Recomputed string
	Match      bool
}

// VerifyAudit re-applies the accept/reject rule to each record's stored
// metric results and flags records whose persisted outcome disagrees. Forced
// rejects (watchdog, cancellation, numeric faults, exhaustion) carry a
// failure kind and are trusted as recorded.
func VerifyAudit(records []audit.Record) ([]AuditCheck, error) {
	checks := make([]AuditCheck, 0, len(records))
	for _, rec := range records {
		check := AuditCheck{
			RecordID: rec.RecordID,
			WindowID: rec.WindowID,
			Outcome:  rec.Outcome,
		}

		// Forced rejects and manual pins carry no metric evidence and are
		// trusted as recorded. A commit without evidence is suspect.
		if rec.FailureKind != "" || rec.MetricsJSON == "" {
			check.Recomputed = rec.Outcome
			check.Match = rec.Outcome != "commit"
			if !check.Match {
				check.Recomputed = "reject"
			}
			checks = append(checks, check)
			continue
		}

		var metrics []commit.MetricResult
		if err := json.Unmarshal([]byte(rec.MetricsJSON), &metrics); err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.RecordID, err)
		}

		recomputed := "commit"
		for _, m := range metrics {
			pass := false
			switch m.Direction {
			case commit.LowerIsBetter:
				pass = m.Shadow <= m.Main-m.MinDelta
			case commit.HigherIsBetter:
				pass = m.Shadow >= m.Main+m.MinDelta
			}
			if !pass {
				recomputed = "reject"
				break
			}
		}
		check.Recomputed = recomputed
		check.Match = rec.Outcome == recomputed
		checks = append(checks, check)
	}
	return checks, nil
}

// #endregion audit-verify
