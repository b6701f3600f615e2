package fed

import (
	"fmt"
	"sort"
)

// #region policy
// Policy combines per-client reports into one round-level budget and
// eligibility vector. All reports in a round share one vector length.
type Policy interface {
	Name() string
	CombineBudgets(reports []Report) []float64
	CombineEligibility(reports []Report) []float64
}

// #endregion policy

// #region harmonic
// HarmonicMeanPolicy is the default combination rule. The harmonic mean gives
// weakest-link semantics for update capacity: a client reporting a near-zero
// budget pulls the aggregate down sharply, so no single high-budget client
// can dominate. Eligibility is a weighted average.
type HarmonicMeanPolicy struct {
	Epsilon float64 // guard for zero budgets in the reciprocal
}

// NewHarmonicMeanPolicy returns the policy with a small reciprocal guard.
func NewHarmonicMeanPolicy() *HarmonicMeanPolicy {
	return &HarmonicMeanPolicy{Epsilon: 1e-12}
}

func (p *HarmonicMeanPolicy) Name() string { return "harmonic_mean" }

// CombineBudgets computes n / sum(1/b_i) element-wise.
func (p *HarmonicMeanPolicy) CombineBudgets(reports []Report) []float64 {
	if len(reports) == 0 {
		return nil
	}
	n := len(reports[0].Budget)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var recip float64
		for _, r := range reports {
			b := r.Budget[i]
			if b < p.Epsilon {
				b = p.Epsilon
			}
			recip += 1 / b
		}
		out[i] = float64(len(reports)) / recip
	}
	return out
}

// CombineEligibility averages element-wise, weighted by each report's weight.
func (p *HarmonicMeanPolicy) CombineEligibility(reports []Report) []float64 {
	return weightedAverage(reports, func(r Report) []float64 { return r.Eligibility })
}

// #endregion harmonic

// #region trimmed
// TrimmedMeanPolicy is the alternate, outlier-resistant rule: a fraction of
// the highest and lowest values is dropped per element before averaging.
type TrimmedMeanPolicy struct {
	Trim float64 // fraction trimmed from each tail, in [0, 0.5)
}

// NewTrimmedMeanPolicy rejects trim fractions that could empty the kept set.
func NewTrimmedMeanPolicy(trim float64) (*TrimmedMeanPolicy, error) {
	if trim < 0 || trim >= 0.5 {
		return nil, fmt.Errorf("trim fraction %v outside [0, 0.5)", trim)
	}
	return &TrimmedMeanPolicy{Trim: trim}, nil
}

func (p *TrimmedMeanPolicy) Name() string { return "trimmed_mean" }

func (p *TrimmedMeanPolicy) CombineBudgets(reports []Report) []float64 {
	return p.trimmed(reports, func(r Report) []float64 { return r.Budget })
}

func (p *TrimmedMeanPolicy) CombineEligibility(reports []Report) []float64 {
	return p.trimmed(reports, func(r Report) []float64 { return r.Eligibility })
}

func (p *TrimmedMeanPolicy) trimmed(reports []Report, vec func(Report) []float64) []float64 {
	if len(reports) == 0 {
		return nil
	}
	n := len(vec(reports[0]))
	drop := int(p.Trim * float64(len(reports)))

	out := make([]float64, n)
	vals := make([]float64, len(reports))
	for i := 0; i < n; i++ {
		for j, r := range reports {
			vals[j] = vec(r)[i]
		}
		sort.Float64s(vals)
		kept := vals[drop : len(vals)-drop]
		var sum float64
		for _, v := range kept {
			sum += v
		}
		out[i] = sum / float64(len(kept))
	}
	return out
}

// #endregion trimmed

// #region helpers
// weightedAverage falls back to sample counts, then to uniform weights, when
// no report carries an explicit weight.
func weightedAverage(reports []Report, vec func(Report) []float64) []float64 {
	if len(reports) == 0 {
		return nil
	}
	n := len(vec(reports[0]))

	weights := make([]float64, len(reports))
	var total float64
	for j, r := range reports {
		w := r.Weight
		if w <= 0 {
			w = float64(r.SampleCount)
		}
		if w <= 0 {
			w = 1
		}
		weights[j] = w
		total += w
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j, r := range reports {
			sum += weights[j] * vec(r)[i]
		}
		out[i] = sum / total
	}
	return out
}

// #endregion helpers
