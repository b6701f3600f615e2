package commit

import (
	"errors"
	"fmt"
	"time"
)

// #region states
// State names the coordinator phases. Committed and Rejected are transient:
// every resolved window returns the coordinator to Accumulating unless the
// watchdog froze it.
type State string

const (
	StateAccumulating State = "accumulating"
	StateEvaluating   State = "evaluating"
	StateFrozen       State = "frozen"
)

// Outcome is the resolution of a validation window.
type Outcome string

const (
	OutcomeCommit Outcome = "commit"
	OutcomeReject Outcome = "reject"
)

// Actions taken on the parameter state as a result of a decision.
const (
	ActionBlend   = "blend"
	ActionDiscard = "discard"
)

// Failure kinds recorded on non-metric rejects.
const (
	FailureNumeric   = "numeric_instability"
	FailureExhausted = "validation_data_exhausted"
	FailureWatchdog  = "watchdog"
	FailureCancelled = "cancelled"
)

// #endregion states

// #region metric-spec
// Direction tells which way a metric improves.
type Direction string

const (
	LowerIsBetter  Direction = "lower_is_better"
	HigherIsBetter Direction = "higher_is_better"
)

// MetricSpec describes one tracked metric. MinDelta is the optional margin the
// shadow run must clear; zero means any non-regression passes.
type MetricSpec struct {
	Name      string
	Direction Direction
	MinDelta  float64
}

// Schema is the monitoring schema: the full set of metrics a window must not
// regress on.
type Schema []MetricSpec

// Validate checks the schema is usable: non-empty, unique names, known
// directions, non-negative margins.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errors.New("monitoring schema is empty")
	}
	seen := make(map[string]bool, len(s))
	for _, spec := range s {
		if spec.Name == "" {
			return errors.New("metric spec with empty name")
		}
		if seen[spec.Name] {
			return fmt.Errorf("duplicate metric spec %q", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Direction != LowerIsBetter && spec.Direction != HigherIsBetter {
			return fmt.Errorf("metric %q: unknown direction %q", spec.Name, spec.Direction)
		}
		if spec.MinDelta < 0 {
			return fmt.Errorf("metric %q: negative min_delta %v", spec.Name, spec.MinDelta)
		}
	}
	return nil
}

// DefaultSchema covers the recommended loss, calibration, and stability
// metrics.
func DefaultSchema() Schema {
	return Schema{
		{Name: "loss", Direction: LowerIsBetter},
		{Name: "ece", Direction: LowerIsBetter},
		{Name: "output_variance", Direction: LowerIsBetter},
	}
}

// #endregion metric-spec

// #region config
// Config holds the window and commit parameters.
type Config struct {
	WindowSteps    int     // tentative steps per window before evaluation (recommended 5-20)
	MaxEvalRetries int     // deferrals allowed while validation data is exhausted
	Chi            float64 // commit blend fraction (recommended 0.1-0.5)
}

// DefaultConfig returns the whitepaper defaults.
func DefaultConfig() Config {
	return Config{
		WindowSteps:    10,
		MaxEvalRetries: 3,
		Chi:            0.25,
	}
}

// #endregion config

// #region report
// Report carries the externally computed metric values for one evaluation
// attempt: main and shadow measured over a disjoint validation batch, plus a
// content hash of that batch for the audit trail. Exhausted signals the caller
// could not assemble a disjoint batch.
type Report struct {
	Main        map[string]float64
	Shadow      map[string]float64
	DatasetHash string
	Exhausted   bool
}

// #endregion report

// #region decision
// MetricResult captures one metric's comparison inside a decision.
type MetricResult struct {
	Name      string
	Direction Direction
	Main      float64
	Shadow    float64
	Delta     float64 // shadow - main
	MinDelta  float64
	Pass      bool
}

// Decision is the resolution of a validation window.
type Decision struct {
	WindowID    string
	GroupID     string
	Outcome     Outcome
	Action      string // blend | discard
	Reason      string
	FailureKind string // empty for metric-based decisions
	Metrics     []MetricResult
	Deltas      map[string]float64
	DatasetHash string
	Steps       int
	CreatedAt   time.Time
}

// #endregion decision

// #region errors
var (
	// ErrEvaluating means a step arrived while a window is under evaluation.
	ErrEvaluating = errors.New("window evaluation in progress")
	// ErrNotEvaluating means Evaluate was called with no open evaluation.
	ErrNotEvaluating = errors.New("no window under evaluation")
	// ErrDeferred means the window stayed open because validation data was
	// exhausted; no decision was produced.
	ErrDeferred = errors.New("validation data exhausted, window deferred")
	// ErrFrozen means the watchdog stopped the coordinator permanently.
	ErrFrozen = errors.New("coordinator frozen")
)

// #endregion errors
