package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/engine"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: an initial
// parameter vector, the dynamics configuration, and a sequence of validation
// windows with their recorded metrics and expected outcomes.
type Fixture struct {
	Description string          `json:"description"`
	Params      []float64       `json:"params"`
	Config      FixtureConfig   `json:"config"`
	Schema      []FixtureMetric `json:"schema"`
	Windows     []FixtureWindow `json:"windows"`
}

// FixtureConfig overrides the default commit parameters.
type FixtureConfig struct {
	WindowSteps int     `json:"window_steps"`
	Chi         float64 `json:"chi"`
}

// FixtureMetric mirrors commit.MetricSpec with JSON tags.
type FixtureMetric struct {
	Name      string  `json:"name"`
	Direction string  `json:"direction"`
	MinDelta  float64 `json:"min_delta"`
}

// FixtureWindow is one recorded validation window. Steps may be empty, in
// which case the window is triggered with shadow == main.
type FixtureWindow struct {
	Steps           []FixtureStep      `json:"steps"`
	MainMetrics     map[string]float64 `json:"main_metrics"`
	ShadowMetrics   map[string]float64 `json:"shadow_metrics"`
	DatasetHash     string             `json:"dataset_hash"`
	ExpectedOutcome string             `json:"expected_outcome"`
}

// FixtureStep is one recorded activation/gradient pair.
type FixtureStep struct {
	Activation []float64 `json:"activation"`
	Gradient   []float64 `json:"gradient"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Params) == 0 {
		return nil, fmt.Errorf("fixture %s: empty parameter vector", path)
	}
	if len(f.Windows) == 0 {
		return nil, fmt.Errorf("fixture %s: no windows", path)
	}
	return &f, nil
}

// ToEngineConfig builds the engine configuration for a replay run: defaults
// with the fixture's commit overrides and schema applied.
func (f *Fixture) ToEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if f.Config.WindowSteps > 0 {
		cfg.Commit.WindowSteps = f.Config.WindowSteps
	}
	if f.Config.Chi > 0 {
		cfg.Commit.Chi = f.Config.Chi
	}
	if len(f.Schema) > 0 {
		schema := make(commit.Schema, len(f.Schema))
		for i, m := range f.Schema {
			schema[i] = commit.MetricSpec{
				Name:      m.Name,
				Direction: commit.Direction(m.Direction),
				MinDelta:  m.MinDelta,
			}
		}
		cfg.Schema = schema
	}
	return cfg
}

// #endregion fixture-loader
