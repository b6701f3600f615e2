package commit

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
)

// #region coordinator
// Coordinator is the per-group safe-commit state machine:
// Accumulating → Evaluating → commit/reject → Accumulating. It owns the
// window bookkeeping and the accept/reject rule; the caller applies the
// resulting blend or rollback to the parameter state and must serialize calls
// for one group (the engine holds a per-group lock across step and decision).
type Coordinator struct {
	groupID string
	cfg     Config
	schema  Schema

	state        State
	windowID     string
	steps        int
	retries      int
	numericFault bool
}

// NewCoordinator validates the configuration and schema up front and returns
// a coordinator in Accumulating.
func NewCoordinator(groupID string, cfg Config, schema Schema) (*Coordinator, error) {
	if cfg.WindowSteps < 1 {
		return nil, fmt.Errorf("window steps %d < 1", cfg.WindowSteps)
	}
	if cfg.MaxEvalRetries < 0 {
		return nil, fmt.Errorf("negative eval retries %d", cfg.MaxEvalRetries)
	}
	if cfg.Chi <= 0 || cfg.Chi > 1 {
		return nil, fmt.Errorf("commit blend fraction %v outside (0, 1]", cfg.Chi)
	}
	if err := schema.Validate(); err != nil {
		return nil, fmt.Errorf("monitoring schema: %w", err)
	}
	return &Coordinator{
		groupID: groupID,
		cfg:     cfg,
		schema:  schema,
		state:   StateAccumulating,
	}, nil
}

// State returns the current phase.
func (c *Coordinator) State() State {
	return c.state
}

// WindowID returns the open window's ID, or "" between windows.
func (c *Coordinator) WindowID() string {
	return c.windowID
}

// Steps returns how many tentative updates the open window has absorbed.
func (c *Coordinator) Steps() int {
	return c.steps
}

// #endregion coordinator

// #region note-step
// NoteStep records one tentative shadow update. It opens a window on the
// first step and reports windowFull when the configured span is reached, at
// which point the coordinator moves to Evaluating and refuses further steps
// until the decision resolves.
func (c *Coordinator) NoteStep(unstable bool) (windowFull bool, err error) {
	switch c.state {
	case StateFrozen:
		return false, ErrFrozen
	case StateEvaluating:
		return false, ErrEvaluating
	}

	if c.windowID == "" {
		c.openWindow()
	}
	c.steps++
	if unstable {
		c.numericFault = true
	}
	if c.steps >= c.cfg.WindowSteps {
		c.state = StateEvaluating
		return true, nil
	}
	return false, nil
}

// Trigger moves the current window to Evaluating before the configured span
// is reached (explicit trigger). A window is opened if none exists, so a
// trigger with zero steps evaluates shadow == main.
func (c *Coordinator) Trigger() error {
	switch c.state {
	case StateFrozen:
		return ErrFrozen
	case StateEvaluating:
		return ErrEvaluating
	}
	if c.windowID == "" {
		c.openWindow()
	}
	c.state = StateEvaluating
	return nil
}

// #endregion note-step

// #region evaluate
// Evaluate resolves the window under evaluation against externally supplied
// metric values. It may defer (ErrDeferred) when the validation data is
// exhausted, up to the configured retry budget; every other path yields a
// Decision. Metric failures never panic or propagate: a non-finite value
// forces a recorded reject.
func (c *Coordinator) Evaluate(report Report) (Decision, error) {
	if c.state == StateFrozen {
		return Decision{}, ErrFrozen
	}
	if c.state != StateEvaluating {
		return Decision{}, ErrNotEvaluating
	}

	// Numeric faults collected during accumulation poison the whole window.
	if c.numericFault {
		return c.resolve(OutcomeReject, FailureNumeric,
			"non-finite values during accumulation", nil, report.DatasetHash), nil
	}

	if report.Exhausted || c.missingMetrics(report) {
		c.retries++
		if c.retries <= c.cfg.MaxEvalRetries {
			return Decision{}, ErrDeferred
		}
		return c.resolve(OutcomeReject, FailureExhausted,
			fmt.Sprintf("no disjoint validation batch after %d attempts", c.retries), nil, report.DatasetHash), nil
	}

	results, failure := c.compareMetrics(report)
	if failure != "" {
		return c.resolve(OutcomeReject, FailureNumeric, failure, results, report.DatasetHash), nil
	}

	for _, r := range results {
		if !r.Pass {
			reason := fmt.Sprintf("metric %s regressed: main=%.6g shadow=%.6g min_delta=%.6g",
				r.Name, r.Main, r.Shadow, r.MinDelta)
			return c.resolve(OutcomeReject, "", reason, results, report.DatasetHash), nil
		}
	}
	return c.resolve(OutcomeCommit, "", "all tracked metrics held", results, report.DatasetHash), nil
}

// ForceReject cancels the window regardless of phase, opening one first if
// needed so the rejection is still auditable. kind should be FailureWatchdog
// or FailureCancelled.
func (c *Coordinator) ForceReject(kind, reason string) (Decision, error) {
	if c.state == StateFrozen {
		return Decision{}, ErrFrozen
	}
	if c.windowID == "" {
		c.openWindow()
	}
	return c.resolve(OutcomeReject, kind, reason, nil, ""), nil
}

// Freeze stops the coordinator permanently: no further accumulation or
// evaluation. Used by the watchdog failsafe.
func (c *Coordinator) Freeze() {
	c.state = StateFrozen
}

// #endregion evaluate

// #region decision-rule
// missingMetrics reports whether any schema metric is absent from the report.
func (c *Coordinator) missingMetrics(report Report) bool {
	for _, spec := range c.schema {
		if _, ok := report.Main[spec.Name]; !ok {
			return true
		}
		if _, ok := report.Shadow[spec.Name]; !ok {
			return true
		}
	}
	return false
}

// compareMetrics applies the all-metrics-must-not-regress rule. A metric with
// min_delta 0 passes on an exact tie. failure names the first non-finite
// metric, if any.
func (c *Coordinator) compareMetrics(report Report) (results []MetricResult, failure string) {
	results = make([]MetricResult, 0, len(c.schema))
	for _, spec := range c.schema {
		main := report.Main[spec.Name]
		sh := report.Shadow[spec.Name]
		r := MetricResult{
			Name:      spec.Name,
			Direction: spec.Direction,
			Main:      main,
			Shadow:    sh,
			Delta:     sh - main,
			MinDelta:  spec.MinDelta,
		}
		if !isFinite(main) || !isFinite(sh) {
			if failure == "" {
				failure = fmt.Sprintf("metric %s produced a non-finite value", spec.Name)
			}
			results = append(results, r)
			continue
		}
		switch spec.Direction {
		case LowerIsBetter:
			r.Pass = sh <= main-spec.MinDelta
		case HigherIsBetter:
			r.Pass = sh >= main+spec.MinDelta
		}
		results = append(results, r)
	}
	return results, failure
}

// #endregion decision-rule

// #region resolve
// resolve closes the window, builds the decision, and returns the coordinator
// to Accumulating.
func (c *Coordinator) resolve(outcome Outcome, failureKind, reason string, results []MetricResult, datasetHash string) Decision {
	action := ActionDiscard
	if outcome == OutcomeCommit {
		action = ActionBlend
	}

	deltas := make(map[string]float64, len(results))
	for _, r := range results {
		deltas[r.Name] = r.Delta
	}

	dec := Decision{
		WindowID:    c.windowID,
		GroupID:     c.groupID,
		Outcome:     outcome,
		Action:      action,
		Reason:      reason,
		FailureKind: failureKind,
		Metrics:     results,
		Deltas:      deltas,
		DatasetHash: datasetHash,
		Steps:       c.steps,
		CreatedAt:   time.Now().UTC(),
	}

	c.windowID = ""
	c.steps = 0
	c.retries = 0
	c.numericFault = false
	c.state = StateAccumulating
	return dec
}

func (c *Coordinator) openWindow() {
	c.windowID = uuid.New().String()
	c.steps = 0
	c.retries = 0
	c.numericFault = false
}

// #endregion resolve

// #region helpers
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MetricNames returns the schema's metric names sorted for stable output.
func (s Schema) MetricNames() []string {
	names := make([]string, len(s))
	for i, spec := range s {
		names[i] = spec.Name
	}
	sort.Strings(names)
	return names
}

// #endregion helpers
