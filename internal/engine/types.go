package engine

import (
	"errors"
	"fmt"

	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/eligibility"
	"github.com/danielpatrickdp/safegate/internal/shadow"
	"github.com/danielpatrickdp/safegate/internal/trace"
)

// #region config
// Config aggregates every dynamics and commit parameter for an engine
// instance. It is validated once at construction and immutable afterwards.
type Config struct {
	Trace       trace.Config
	Gate        trace.GateConfig
	Eligibility eligibility.Config
	Budget      eligibility.BudgetConfig
	Shadow      shadow.Config
	Commit      commit.Config
	Watchdog    commit.WatchdogConfig
	Schema      commit.Schema
}

// DefaultConfig returns the recommended parameters with the default
// monitoring schema.
func DefaultConfig() Config {
	return Config{
		Trace:       trace.DefaultConfig(),
		Gate:        trace.DefaultGateConfig(),
		Eligibility: eligibility.DefaultConfig(),
		Budget:      eligibility.DefaultBudgetConfig(),
		Shadow:      shadow.DefaultConfig(),
		Commit:      commit.DefaultConfig(),
		Watchdog:    commit.DefaultWatchdogConfig(),
		Schema:      commit.DefaultSchema(),
	}
}

// ConfigError names the parameter that failed validation.
type ConfigError struct {
	Param  string
	Detail string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Param, e.Detail)
}

func badParam(param, format string, args ...interface{}) error {
	return &ConfigError{Param: param, Detail: fmt.Sprintf(format, args...)}
}

// Validate rejects out-of-range parameters up front so an engine can never be
// built on a divergent configuration.
func (c Config) Validate() error {
	if c.Trace.Alpha < 0 || c.Trace.Alpha >= 1 {
		return badParam("trace.alpha", "%v outside [0, 1)", c.Trace.Alpha)
	}
	if c.Trace.Beta < 0 {
		return badParam("trace.beta", "negative coupling %v", c.Trace.Beta)
	}
	if c.Trace.Gamma < 0 {
		return badParam("trace.gamma", "negative coupling %v", c.Trace.Gamma)
	}
	if c.Trace.InputClamp <= 0 {
		return badParam("trace.input_clamp", "%v must be positive", c.Trace.InputClamp)
	}
	if c.Gate.Kappa <= 0 || c.Gate.Kappa >= 1 {
		return badParam("gate.kappa", "%v outside (0, 1)", c.Gate.Kappa)
	}
	if c.Gate.Temperature <= 0 {
		return badParam("gate.temperature", "%v must be positive", c.Gate.Temperature)
	}
	if c.Eligibility.Lambda < 0 || c.Eligibility.Lambda >= 1 {
		return badParam("eligibility.lambda", "%v outside [0, 1)", c.Eligibility.Lambda)
	}
	if c.Budget.Rho < 0 || c.Budget.Rho >= 1 {
		return badParam("budget.rho", "%v outside [0, 1)", c.Budget.Rho)
	}
	if c.Budget.Delta < 0 {
		return badParam("budget.delta", "negative coupling %v", c.Budget.Delta)
	}
	if c.Budget.Floor <= 0 {
		return badParam("budget.floor", "%v must be positive", c.Budget.Floor)
	}
	if c.Shadow.Driver != shadow.DriverGradient && c.Shadow.Driver != shadow.DriverEligibility {
		return badParam("shadow.driver", "unknown driver %q", c.Shadow.Driver)
	}
	if c.Commit.WindowSteps < 1 {
		return badParam("commit.window_steps", "%d < 1", c.Commit.WindowSteps)
	}
	if c.Commit.MaxEvalRetries < 0 {
		return badParam("commit.max_eval_retries", "negative retry budget %d", c.Commit.MaxEvalRetries)
	}
	if c.Commit.Chi <= 0 || c.Commit.Chi > 1 {
		return badParam("commit.chi", "%v outside (0, 1]", c.Commit.Chi)
	}
	if err := c.Schema.Validate(); err != nil {
		return badParam("schema", "%v", err)
	}
	return nil
}

// #endregion config

// #region step-io
// StepInput is one group's per-step signal pair for StepAll.
type StepInput struct {
	Activation []float64
	Gradient   []float64
}

// StepResult reports the effect of one tentative update.
type StepResult struct {
	WindowID   string
	Steps      int  // steps absorbed by the open window so far
	WindowFull bool // window reached its span; evaluation is due
	Unstable   bool // a non-finite input or result was sanitized this step
}

// StepOutcome pairs a StepAll result with its error for one group.
type StepOutcome struct {
	Result StepResult
	Err    error
}

// #endregion step-io

// #region snapshot
// Snapshot is a copy of one group's full numeric state.
type Snapshot struct {
	GroupID          string
	MainValue        []float64
	ShadowValue      []float64
	RefractoryTrace  []float64
	EligibilityTrace []float64
	Budget           []float64
	Frozen           bool
}

// #endregion snapshot

// #region errors
var (
	// ErrUnknownGroup means the group ID was never registered.
	ErrUnknownGroup = errors.New("unknown parameter group")
	// ErrGroupExists means AddGroup was called twice for one ID.
	ErrGroupExists = errors.New("parameter group already registered")
	// ErrNoAuditStore means a checkpoint operation requires a store.
	ErrNoAuditStore = errors.New("no audit store attached")
)

// #endregion errors
