package shadow

import "math"

// #region apply
// Apply computes the tentative weights element-wise:
// shadow' = shadow - gate*budget*driver, where driver is the raw gradient or
// the eligibility trace per cfg.Driver. Only the shadow copy moves; main is
// untouched until a commit, which is what makes the update reversible.
// Non-finite results keep the previous shadow value and are flagged.
func Apply(shadowVal, gate, budget, gradient, elig []float64, cfg Config) (next []float64, unstable bool) {
	driver := gradient
	if cfg.Driver == DriverEligibility {
		driver = elig
	}

	next = make([]float64, len(shadowVal))
	for i := range shadowVal {
		v := shadowVal[i] - gate[i]*budget[i]*driver[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = shadowVal[i]
			unstable = true
		}
		next[i] = v
	}
	return next, unstable
}

// #endregion apply
