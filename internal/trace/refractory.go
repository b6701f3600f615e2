package trace

import "math"

// #region update
// Update computes the next refractory trace element-wise:
// trace' = clamp(alpha*trace + beta*|activation| + gamma*|gradient|, 0, 1).
// Activations and gradients are clamped to cfg.InputClamp before coupling so
// extreme magnitudes saturate instead of overflowing. The unstable flag is set
// when a non-finite input had to be sanitized; the returned trace is always
// finite and within [0, 1]. Lengths of all three slices must match.
func Update(current, activation, gradient []float64, cfg Config) (next []float64, unstable bool) {
	next = make([]float64, len(current))
	for i := range current {
		act, ok := saturate(activation[i], cfg.InputClamp)
		if !ok {
			unstable = true
		}
		grad, ok := saturate(gradient[i], cfg.InputClamp)
		if !ok {
			unstable = true
		}

		v := cfg.Alpha*current[i] + cfg.Beta*act + cfg.Gamma*grad
		if math.IsNaN(v) {
			// Prior trace was corrupted; recover by saturating.
			v = 1
			unstable = true
		}
		next[i] = clampUnit(v)
	}
	return next, unstable
}

// #endregion update

// #region helpers
// saturate returns |x| capped at limit. NaN maps to the cap and reports false.
func saturate(x, limit float64) (float64, bool) {
	if math.IsNaN(x) {
		return limit, false
	}
	a := math.Abs(x)
	if a > limit {
		if math.IsInf(x, 0) {
			return limit, false
		}
		return limit, true
	}
	return a, true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
