package trace

import "math"

// #region gate
// Gate maps a refractory trace to an update permission strength in (0, 1):
// g = sigmoid((kappa - trace) / temperature). Higher refractory means a more
// closed gate. Pure function, no state.
func Gate(current []float64, cfg GateConfig) []float64 {
	out := make([]float64, len(current))
	for i, tr := range current {
		out[i] = sigmoid((cfg.Kappa - tr) / cfg.Temperature)
	}
	return out
}

// GateScalar evaluates the gate for a single trace value.
func GateScalar(tr float64, cfg GateConfig) float64 {
	return sigmoid((cfg.Kappa - tr) / cfg.Temperature)
}

// #endregion gate

// #region sigmoid
// sigmoid is the numerically stable formulation: the exponential argument is
// always non-positive, so it cannot overflow for any finite input.
func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

// #endregion sigmoid
