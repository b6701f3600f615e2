package eligibility

import "math"

// #region update
// Update computes the next eligibility trace element-wise:
// eligibility' = lambda*eligibility + gate*gradient. The trace is an
// exponentially-weighted memory of gated gradient signal; it grows while a
// parameter keeps receiving open-gate gradient of one sign and decays
// otherwise. Non-finite results are zeroed and flagged. Lengths must match.
func Update(current, gate, gradient []float64, cfg Config) (next []float64, unstable bool) {
	next = make([]float64, len(current))
	for i := range current {
		v := cfg.Lambda*current[i] + gate[i]*gradient[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
			unstable = true
		}
		next[i] = v
	}
	return next, unstable
}

// #endregion update
