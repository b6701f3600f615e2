package replay

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleFixture = `{
  "description": "two-window regression check",
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
      "dataset_hash": "sha256:w0",
      "expected_outcome": "commit"
    },
    {
      "steps": [
        {"activation": [0.1, 0.1], "gradient": [0.1, 0.1]},
        {"activation": [0.1, 0.1], "gradient": [0.1, 0.1]}
      ],
      "main_metrics": {"loss": 0.5},
      "shadow_metrics": {"loss": 0.6},
      "dataset_hash": "sha256:w1",
      "expected_outcome": "reject"
    }
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	f, err := LoadFixture(writeFixture(t, sampleFixture))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if len(f.Params) != 2 || len(f.Windows) != 2 {
		t.Fatalf("unexpected fixture: %+v", f)
	}
	if f.Config.WindowSteps != 2 || f.Config.Chi != 0.25 {
		t.Fatalf("unexpected config: %+v", f.Config)
	}

	cfg := f.ToEngineConfig()
	if cfg.Commit.WindowSteps != 2 || cfg.Commit.Chi != 0.25 {
		t.Fatalf("config overrides not applied: %+v", cfg.Commit)
	}
	if len(cfg.Schema) != 1 || cfg.Schema[0].Name != "loss" {
		t.Fatalf("schema not applied: %+v", cfg.Schema)
	}
}

func TestLoadFixtureRejectsEmpty(t *testing.T) {
	if _, err := LoadFixture(writeFixture(t, `{"params": [], "windows": []}`)); err == nil {
		t.Fatal("expected error for empty fixture")
	}
	if _, err := LoadFixture(writeFixture(t, `not json`)); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
