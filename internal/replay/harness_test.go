package replay

import (
	"testing"

	"github.com/danielpatrickdp/safegate/internal/audit"
)

func TestReplayFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, sampleFixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, summary, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Actual != "commit" || !results[0].Match {
		t.Fatalf("window 0: %+v", results[0])
	}
	if results[1].Actual != "reject" || !results[1].Match {
		t.Fatalf("window 1: %+v", results[1])
	}

	if summary.Commits != 1 || summary.Rejects != 1 || summary.Mismatches != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.FinalMain) != 2 {
		t.Fatalf("final main length %d", len(summary.FinalMain))
	}
}

func TestReplayWindowLengths(t *testing.T) {
	// A window recording exactly window_steps steps is already awaiting its
	// decision when replayed; a shorter window needs the explicit trigger.
	// Both must resolve in one run.
	const fixture = `{
	  "params": [1.0, 2.0],
	  "config": {"window_steps": 2, "chi": 0.25},
	  "schema": [
	    {"name": "loss", "direction": "lower_is_better", "min_delta": 0}
	  ],
	  "windows": [
	    {
	      "steps": [
	        {"activation": [0.5, 0.5], "gradient": [0.5, -0.5]},
	        {"activation": [0.5, 0.5], "gradient": [0.5, -0.5]}
	      ],
	      "main_metrics": {"loss": 0.5},
	      "shadow_metrics": {"loss": 0.4},
	      "expected_outcome": "commit"
	    },
	    {
	      "steps": [
	        {"activation": [0.1, 0.1], "gradient": [0.1, 0.1]}
	      ],
	      "main_metrics": {"loss": 0.5},
	      "shadow_metrics": {"loss": 0.4},
	      "expected_outcome": "commit"
	    }
	  ]
	}`
	f, err := LoadFixture(writeFixture(t, fixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, summary, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if len(results) != 2 || summary.Mismatches != 0 {
		t.Fatalf("unexpected replay: results=%+v summary=%+v", results, summary)
	}
}

func TestReplayFlagsMismatch(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, sampleFixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	f.Windows[1].ExpectedOutcome = "commit" // recorded expectation is wrong

	results, summary, err := Replay(f)
	if err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if results[1].Match {
		t.Fatal("expected mismatch on window 1")
	}
	if summary.Mismatches != 1 {
		t.Fatalf("mismatches = %d, want 1", summary.Mismatches)
	}
}

func TestVerifyAudit(t *testing.T) {
	records := []audit.Record{
		{
			RecordID: "r1",
			Outcome:  "commit",
			MetricsJSON: `[{"Name":"loss","Direction":"lower_is_better","Main":0.5,"Shadow":0.4,"Delta":-0.1,"MinDelta":0,"Pass":true}]`,
		},
		{
			RecordID: "r2",
			Outcome:  "commit", // tampered: the stored metrics say regress
			MetricsJSON: `[{"Name":"loss","Direction":"lower_is_better","Main":0.5,"Shadow":0.6,"Delta":0.1,"MinDelta":0,"Pass":true}]`,
		},
		{
			RecordID:    "r3",
			Outcome:     "reject",
			FailureKind: "watchdog",
		},
		{
			RecordID: "r4",
			Outcome:  "pin",
		},
	}

	checks, err := VerifyAudit(records)
	if err != nil {
		t.Fatalf("VerifyAudit: %v", err)
	}
	if !checks[0].Match {
		t.Fatalf("consistent commit flagged: %+v", checks[0])
	}
	if checks[1].Match || checks[1].Recomputed != "reject" {
		t.Fatalf("tampered commit not flagged: %+v", checks[1])
	}
	if !checks[2].Match {
		t.Fatalf("forced reject flagged: %+v", checks[2])
	}
	if !checks[3].Match {
		t.Fatalf("pin record flagged: %+v", checks[3])
	}
}

func TestVerifyAuditBadJSON(t *testing.T) {
	_, err := VerifyAudit([]audit.Record{{RecordID: "r1", Outcome: "commit", MetricsJSON: "{"}})
	if err == nil {
		t.Fatal("expected error for malformed metrics JSON")
	}
}
