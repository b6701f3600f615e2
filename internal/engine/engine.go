package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"github.com/danielpatrickdp/safegate/internal/audit"
	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/eligibility"
	"github.com/danielpatrickdp/safegate/internal/logging"
	"github.com/danielpatrickdp/safegate/internal/shadow"
	"github.com/danielpatrickdp/safegate/internal/trace"
)

// #region engine
// Engine owns a set of independent parameter groups and runs the full
// per-step pipeline for each: refractory update, gate, eligibility, budget,
// shadow update, window bookkeeping. Groups are isolated — each holds its own
// lock, so steps on different groups proceed in parallel while all operations
// on one group are serialized.
type Engine struct {
	cfg Config

	mu     sync.RWMutex
	groups map[string]*group

	store     *audit.Store // optional
	decisions io.Writer    // optional JSON-lines stream

	statsMu sync.Mutex
	steps   int64
	commits int64
	rejects int64
}

// group bundles one parameter group's state with its commit machinery. The
// group lock spans the whole step and the whole evaluation, which is what
// makes a commit or rollback atomic with respect to concurrent steps.
type group struct {
	mu       sync.Mutex
	params   *shadow.ParameterState
	coord    *commit.Coordinator
	watchdog *commit.Watchdog
}

// New validates the configuration and returns an empty engine.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		groups: make(map[string]*group),
	}, nil
}

// AuditTo attaches a persistent audit store. Every resolved window is
// appended to it.
func (e *Engine) AuditTo(store *audit.Store) {
	e.store = store
}

// LogDecisionsTo attaches a JSON-lines decision stream.
func (e *Engine) LogDecisionsTo(w io.Writer) {
	e.decisions = w
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// #endregion engine

// #region groups
// AddGroup registers a parameter group around the given main weights. Shadow
// starts equal to main, traces at zero, budget at the floor.
func (e *Engine) AddGroup(id string, main []float64) error {
	if id == "" {
		return errors.New("empty group ID")
	}
	if len(main) == 0 {
		return fmt.Errorf("group %s: empty parameter vector", id)
	}

	coord, err := commit.NewCoordinator(id, e.cfg.Commit, e.cfg.Schema)
	if err != nil {
		return fmt.Errorf("group %s: %w", id, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.groups[id]; ok {
		return fmt.Errorf("group %s: %w", id, ErrGroupExists)
	}
	e.groups[id] = &group{
		params:   shadow.NewParameterState(main, e.cfg.Budget.Floor),
		coord:    coord,
		watchdog: commit.NewWatchdog(e.cfg.Watchdog),
	}
	return nil
}

// Groups returns the registered group IDs, sorted.
func (e *Engine) Groups() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.groups))
	for id := range e.groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *Engine) group(id string) (*group, error) {
	e.mu.RLock()
	g, ok := e.groups[id]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("group %s: %w", id, ErrUnknownGroup)
	}
	return g, nil
}

// #endregion groups

// #region step
// Step applies one tentative update to a group. Main weights are never
// touched; only the shadow copy and the traces move. Returns ErrEvaluating
// while the group's window awaits a decision and ErrFrozen after a watchdog
// freeze; in both cases the state is left untouched.
func (e *Engine) Step(id string, activation, gradient []float64) (StepResult, error) {
	g, err := e.group(id)
	if err != nil {
		return StepResult{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ps := g.params
	if len(activation) != ps.Len() || len(gradient) != ps.Len() {
		return StepResult{}, fmt.Errorf("group %s: signal length %d/%d, parameters %d",
			id, len(activation), len(gradient), ps.Len())
	}

	nextTrace, u1 := trace.Update(ps.RefractoryTrace, activation, gradient, e.cfg.Trace)
	gateVec := trace.Gate(nextTrace, e.cfg.Gate)
	nextElig, u2 := eligibility.Update(ps.EligibilityTrace, gateVec, gradient, e.cfg.Eligibility)
	nextBudget, u3 := eligibility.UpdateBudget(ps.Budget, nextElig, e.cfg.Budget)
	nextShadow, u4 := shadow.Apply(ps.ShadowValue, gateVec, nextBudget, gradient, nextElig, e.cfg.Shadow)
	unstable := u1 || u2 || u3 || u4

	windowFull, err := g.coord.NoteStep(unstable)
	if err != nil {
		return StepResult{}, err
	}

	ps.RefractoryTrace = nextTrace
	ps.EligibilityTrace = nextElig
	ps.Budget = nextBudget
	ps.ShadowValue = nextShadow

	e.statsMu.Lock()
	e.steps++
	e.statsMu.Unlock()

	return StepResult{
		WindowID:   g.coord.WindowID(),
		Steps:      g.coord.Steps(),
		WindowFull: windowFull,
		Unstable:   unstable,
	}, nil
}

// StepAll applies one step per group concurrently. Groups absent from the
// batch are skipped; each group's outcome is reported independently.
func (e *Engine) StepAll(batch map[string]StepInput) map[string]StepOutcome {
	out := make(map[string]StepOutcome, len(batch))
	var outMu sync.Mutex
	var wg sync.WaitGroup

	for id, in := range batch {
		wg.Add(1)
		go func(id string, in StepInput) {
			defer wg.Done()
			res, err := e.Step(id, in.Activation, in.Gradient)
			outMu.Lock()
			out[id] = StepOutcome{Result: res, Err: err}
			outMu.Unlock()
		}(id, in)
	}
	wg.Wait()
	return out
}

// #endregion step

// #region evaluate
// Evaluate resolves a group's window under evaluation against the supplied
// metric report and applies the decision: a commit blends shadow into main, a
// reject discards shadow. ErrDeferred passes through with the window left
// open. The decision is audited and streamed before the watchdog verdict is
// applied, so a freezing window is still recorded.
func (e *Engine) Evaluate(id string, report commit.Report) (commit.Decision, error) {
	g, err := e.group(id)
	if err != nil {
		return commit.Decision{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	dec, err := g.coord.Evaluate(report)
	if err != nil {
		return commit.Decision{}, err
	}
	e.applyDecision(g, dec)
	return dec, nil
}

// TriggerEvaluation closes a group's window early, opening an empty one if
// none is accumulating.
func (e *Engine) TriggerEvaluation(id string) error {
	g, err := e.group(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coord.Trigger()
}

// Cancel discards a group's pending window regardless of phase and rolls the
// shadow weights back. The cancellation is recorded like any other reject.
func (e *Engine) Cancel(id, reason string) (commit.Decision, error) {
	g, err := e.group(id)
	if err != nil {
		return commit.Decision{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	dec, err := g.coord.ForceReject(commit.FailureCancelled, reason)
	if err != nil {
		return commit.Decision{}, err
	}
	e.applyDecision(g, dec)
	return dec, nil
}

// applyDecision mutates parameter state per the decision's action, records
// the decision, and runs the watchdog. Caller holds the group lock.
func (e *Engine) applyDecision(g *group, dec commit.Decision) {
	switch dec.Outcome {
	case commit.OutcomeCommit:
		g.params.BlendCommit(e.cfg.Commit.Chi)
	case commit.OutcomeReject:
		g.params.ResetShadow()
	}

	e.statsMu.Lock()
	if dec.Outcome == commit.OutcomeCommit {
		e.commits++
	} else {
		e.rejects++
	}
	e.statsMu.Unlock()

	e.record(dec)

	if g.watchdog.Observe(dec) {
		log.Printf("[ENGINE] watchdog tripped for group %s, freezing", dec.GroupID)
		g.coord.Freeze()
	}
}

// record appends the decision to the audit store and the decision stream.
// Recording failures are logged, never propagated: a storage hiccup must not
// corrupt the in-memory state transition that already happened.
func (e *Engine) record(dec commit.Decision) {
	if e.store != nil {
		var metricsJSON []byte
		if len(dec.Metrics) > 0 {
			metricsJSON, _ = json.Marshal(dec.Metrics)
		}
		_, err := e.store.Append(audit.Record{
			GroupID:     dec.GroupID,
			WindowID:    dec.WindowID,
			Outcome:     string(dec.Outcome),
			Action:      dec.Action,
			FailureKind: dec.FailureKind,
			MetricsJSON: string(metricsJSON),
			Reason:      dec.Reason,
			Deltas:      dec.Deltas,
			DatasetHash: dec.DatasetHash,
			Steps:       dec.Steps,
			CreatedAt:   dec.CreatedAt,
		})
		if err != nil {
			log.Printf("[ENGINE] audit append failed: %v", err)
		}
	}
	if e.decisions != nil {
		err := logging.LogDecision(e.decisions, logging.DecisionEntry{
			GroupID:     dec.GroupID,
			WindowID:    dec.WindowID,
			Outcome:     string(dec.Outcome),
			Action:      dec.Action,
			Reason:      dec.Reason,
			FailureKind: dec.FailureKind,
			Deltas:      dec.Deltas,
			DatasetHash: dec.DatasetHash,
			Steps:       dec.Steps,
			CreatedAt:   dec.CreatedAt,
		})
		if err != nil {
			log.Printf("[ENGINE] decision stream write failed: %v", err)
		}
	}
}

// #endregion evaluate

// #region checkpoints
// SaveCheckpoint snapshots a group's main weights into the audit store.
func (e *Engine) SaveCheckpoint(id, note string) (audit.Checkpoint, error) {
	if e.store == nil {
		return audit.Checkpoint{}, ErrNoAuditStore
	}
	g, err := e.group(id)
	if err != nil {
		return audit.Checkpoint{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return e.store.SaveCheckpoint(id, g.params.MainValue, note)
}

// PinCheckpoint overwrites a group's main weights with a stored checkpoint,
// discarding any tentative shadow delta. The manual override is recorded in
// the audit trail.
func (e *Engine) PinCheckpoint(id, checkpointID string) error {
	if e.store == nil {
		return ErrNoAuditStore
	}
	g, err := e.group(id)
	if err != nil {
		return err
	}
	cp, err := e.store.GetCheckpoint(checkpointID)
	if err != nil {
		return err
	}
	if cp.GroupID != id {
		return fmt.Errorf("checkpoint %s belongs to group %s, not %s", checkpointID, cp.GroupID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(cp.MainValue) != g.params.Len() {
		return fmt.Errorf("checkpoint %s has %d parameters, group has %d",
			checkpointID, len(cp.MainValue), g.params.Len())
	}
	g.params.PinMain(cp.MainValue)

	if _, err := e.store.Append(audit.Record{
		GroupID: id,
		Outcome: "pin",
		Action:  "pin",
		Reason:  fmt.Sprintf("main pinned to checkpoint %s", checkpointID),
	}); err != nil {
		log.Printf("[ENGINE] audit append failed: %v", err)
	}
	return nil
}

// #endregion checkpoints

// #region observe
// MainValue returns a copy of a group's deployed weights.
func (e *Engine) MainValue(id string) ([]float64, error) {
	g, err := e.group(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]float64(nil), g.params.MainValue...), nil
}

// SnapshotGroup returns a copy of a group's full numeric state.
func (e *Engine) SnapshotGroup(id string) (Snapshot, error) {
	g, err := e.group(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		GroupID:          id,
		MainValue:        append([]float64(nil), g.params.MainValue...),
		ShadowValue:      append([]float64(nil), g.params.ShadowValue...),
		RefractoryTrace:  append([]float64(nil), g.params.RefractoryTrace...),
		EligibilityTrace: append([]float64(nil), g.params.EligibilityTrace...),
		Budget:           append([]float64(nil), g.params.Budget...),
		Frozen:           g.coord.State() == commit.StateFrozen,
	}, nil
}

// Frozen reports whether a group's coordinator has been frozen.
func (e *Engine) Frozen(id string) (bool, error) {
	g, err := e.group(id)
	if err != nil {
		return false, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coord.State() == commit.StateFrozen, nil
}

// RejectedRatio returns the fraction of resolved windows that were rejected,
// or 0 before the first resolution. A climbing ratio is the early signal that
// incoming gradients fight the monitoring schema.
func (e *Engine) RejectedRatio() float64 {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	total := e.commits + e.rejects
	if total == 0 {
		return 0
	}
	return float64(e.rejects) / float64(total)
}

// Steps returns the total tentative updates applied across all groups.
func (e *Engine) Steps() int64 {
	e.statsMu.Lock()
	defer e.statsMu.Unlock()
	return e.steps
}

// RefractoryHistogram buckets a group's refractory trace into equal-width
// bins over [0, 1]. Trace mass piling into the top bins means the group is
// going quiescent.
func (e *Engine) RefractoryHistogram(id string, bins int) ([]int, error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram bins %d < 1", bins)
	}
	g, err := e.group(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	hist := make([]int, bins)
	for _, tr := range g.params.RefractoryTrace {
		idx := int(tr * float64(bins))
		if idx >= bins {
			idx = bins - 1
		}
		hist[idx]++
	}
	return hist, nil
}

// #endregion observe
