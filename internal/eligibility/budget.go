package eligibility

import "math"

// #region budget-update
// UpdateBudget computes the next per-element update capacity:
// budget' = max(floor, rho*budget + delta*|eligibility|). The floor guarantees
// no parameter is ever permanently frozen. Non-finite results collapse to the
// floor and are flagged. Lengths must match.
func UpdateBudget(current, elig []float64, cfg BudgetConfig) (next []float64, unstable bool) {
	next = make([]float64, len(current))
	for i := range current {
		v := cfg.Rho*current[i] + cfg.Delta*math.Abs(elig[i])
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = cfg.Floor
			unstable = true
		}
		if v < cfg.Floor {
			v = cfg.Floor
		}
		next[i] = v
	}
	return next, unstable
}

// #endregion budget-update
