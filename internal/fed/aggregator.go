package fed

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/safegate/internal/commit"
	"github.com/danielpatrickdp/safegate/internal/engine"
)

// #region aggregator
// Aggregator runs federation rounds over one shared engine. Clients train
// independently and submit budget/eligibility reports; closing a round
// combines them through the policy and drives a single coordinator-level
// commit decision. The aggregator mutex serializes rounds, so a round's blend
// is fully applied before the next round reads the shared main weights.
// Clients never commit to the shared main directly.
type Aggregator struct {
	mu     sync.Mutex
	cfg    Config
	policy Policy
	engine *engine.Engine
	rounds map[string]*round
}

type round struct {
	id       string
	groupID  string
	expected map[string]bool
	reports  map[string]Report
	length   int // vector length fixed by the first accepted report
	open     bool
}

// NewAggregator validates the admission policy up front.
func NewAggregator(eng *engine.Engine, policy Policy, cfg Config) (*Aggregator, error) {
	if eng == nil {
		return nil, errors.New("nil engine")
	}
	if policy == nil {
		return nil, errors.New("nil aggregation policy")
	}
	if cfg.Quorum < 1 {
		return nil, fmt.Errorf("quorum %d < 1", cfg.Quorum)
	}
	return &Aggregator{
		cfg:    cfg,
		policy: policy,
		engine: eng,
		rounds: make(map[string]*round),
	}, nil
}

// #endregion aggregator

// #region open
// OpenRound starts a round for a registered group. expectedClients may be
// empty, in which case only the quorum bounds admission.
func (a *Aggregator) OpenRound(groupID string, expectedClients []string) (string, error) {
	if _, err := a.engine.MainValue(groupID); err != nil {
		return "", err
	}

	expected := make(map[string]bool, len(expectedClients))
	for _, c := range expectedClients {
		expected[c] = true
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	id := uuid.New().String()
	a.rounds[id] = &round{
		id:       id,
		groupID:  groupID,
		expected: expected,
		reports:  make(map[string]Report),
		open:     true,
	}
	log.Printf("[FED] round %s opened for group %s (%d expected clients)", id, groupID, len(expectedClients))
	return id, nil
}

// #endregion open

// #region submit
// Submit records a client's report for its round. A resubmission by the same
// client replaces the previous report. Reports for a closed round are
// dropped with ErrRoundClosed.
func (a *Aggregator) Submit(rep Report) error {
	if rep.ClientID == "" {
		return errors.New("report with empty client ID")
	}
	if len(rep.Budget) == 0 || len(rep.Budget) != len(rep.Eligibility) {
		return fmt.Errorf("client %s: budget length %d, eligibility length %d",
			rep.ClientID, len(rep.Budget), len(rep.Eligibility))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	r, ok := a.rounds[rep.RoundID]
	if !ok {
		return fmt.Errorf("round %s: %w", rep.RoundID, ErrUnknownRound)
	}
	if !r.open {
		return fmt.Errorf("round %s: %w", rep.RoundID, ErrRoundClosed)
	}
	if len(r.expected) > 0 && !r.expected[rep.ClientID] {
		return fmt.Errorf("client %s not a participant of round %s", rep.ClientID, rep.RoundID)
	}
	if r.length == 0 {
		r.length = len(rep.Budget)
	} else if len(rep.Budget) != r.length {
		return fmt.Errorf("client %s: vector length %d, round uses %d",
			rep.ClientID, len(rep.Budget), r.length)
	}

	r.reports[rep.ClientID] = rep
	return nil
}

// #endregion submit

// #region close
// CloseRound combines the round's reports and resolves one commit decision
// against the shared main weights using the supplied metric report. A quorum
// shortfall skips the round: it closes with no decision and a QuorumError. A
// deferred evaluation (validation data exhausted) leaves the round open for a
// retry with a fresh batch.
func (a *Aggregator) CloseRound(roundID string, metrics commit.Report) (RoundResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r, ok := a.rounds[roundID]
	if !ok {
		return RoundResult{}, fmt.Errorf("round %s: %w", roundID, ErrUnknownRound)
	}
	if !r.open {
		return RoundResult{}, fmt.Errorf("round %s: %w", roundID, ErrRoundClosed)
	}

	need := a.cfg.Quorum
	if !a.cfg.AllowPartial && len(r.expected) > need {
		need = len(r.expected)
	}
	if len(r.reports) < need {
		r.open = false
		log.Printf("[FED] round %s skipped: %d/%d reports", roundID, len(r.reports), need)
		return RoundResult{}, &QuorumError{RoundID: roundID, Got: len(r.reports), Want: need}
	}

	reports := make([]Report, 0, len(r.reports))
	for _, rep := range r.reports {
		reports = append(reports, rep)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].ClientID < reports[j].ClientID })

	combined := RoundResult{
		RoundID:             roundID,
		GroupID:             r.groupID,
		Policy:              a.policy.Name(),
		CombinedBudget:      a.policy.CombineBudgets(reports),
		CombinedEligibility: a.policy.CombineEligibility(reports),
	}

	if err := a.engine.TriggerEvaluation(r.groupID); err != nil && !errors.Is(err, commit.ErrEvaluating) {
		r.open = false
		return RoundResult{}, fmt.Errorf("round %s: %w", roundID, err)
	}
	dec, err := a.engine.Evaluate(r.groupID, metrics)
	if errors.Is(err, commit.ErrDeferred) {
		// Window stays open; the round may be re-closed with a fresh batch.
		return combined, err
	}
	if err != nil {
		r.open = false
		return RoundResult{}, fmt.Errorf("round %s: %w", roundID, err)
	}

	r.open = false
	combined.Decision = dec
	log.Printf("[FED] round %s resolved: %s (%s)", roundID, dec.Outcome, dec.Reason)
	return combined, nil
}

// #endregion close

// #region status
// Status returns a point-in-time view of a round.
func (a *Aggregator) Status(roundID string) (RoundStatus, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r, ok := a.rounds[roundID]
	if !ok {
		return RoundStatus{}, fmt.Errorf("round %s: %w", roundID, ErrUnknownRound)
	}

	clients := make([]string, 0, len(r.reports))
	for c := range r.reports {
		clients = append(clients, c)
	}
	sort.Strings(clients)

	return RoundStatus{
		RoundID:     r.id,
		GroupID:     r.groupID,
		Open:        r.open,
		ReportCount: len(r.reports),
		Clients:     clients,
	}, nil
}

// #endregion status
