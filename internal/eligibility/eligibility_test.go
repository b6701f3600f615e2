package eligibility

import (
	"math"
	"testing"
)

func TestUpdateAccumulatesTowardLimit(t *testing.T) {
	// With gate=1 and constant positive gradient g, eligibility converges
	// toward g/(1-lambda) from below and never exceeds it.
	cfg := Config{Lambda: 0.9}
	grad := 0.5
	limit := grad / (1 - cfg.Lambda)

	current := []float64{0}
	gate := []float64{1}
	g := []float64{grad}

	prev := 0.0
	for step := 0; step < 1000; step++ {
		current, _ = Update(current, gate, g, cfg)
		if current[0] < prev {
			t.Fatalf("step %d: eligibility decreased: %v -> %v", step, prev, current[0])
		}
		// Strict growth is required away from the convergence limit; at the
		// limit the increment falls below float64 resolution and stalls.
		if limit-prev > 1e-9 && current[0] <= prev {
			t.Fatalf("step %d: eligibility did not strictly increase: %v -> %v", step, prev, current[0])
		}
		if current[0] > limit {
			t.Fatalf("step %d: eligibility %v exceeded limit %v", step, current[0], limit)
		}
		prev = current[0]
	}
	if limit-current[0] > 0.01 {
		t.Fatalf("eligibility %v did not approach limit %v", current[0], limit)
	}
}

func TestUpdateMagnitudeMonotoneForNegativeGradient(t *testing.T) {
	cfg := Config{Lambda: 0.85}

	current := []float64{0}
	gate := []float64{0.7}
	g := []float64{-1.0}

	prevAbs := 0.0
	for step := 0; step < 200; step++ {
		current, _ = Update(current, gate, g, cfg)
		if math.Abs(current[0]) < prevAbs {
			t.Fatalf("step %d: |eligibility| decreased under constant signal", step)
		}
		prevAbs = math.Abs(current[0])
	}
	if current[0] >= 0 {
		t.Fatalf("expected negative eligibility, got %v", current[0])
	}
}

func TestUpdateDecaysWithClosedGate(t *testing.T) {
	cfg := Config{Lambda: 0.9}

	current := []float64{2.0}
	gate := []float64{0}
	g := []float64{5.0}

	current, _ = Update(current, gate, g, cfg)
	if current[0] != 1.8 {
		t.Fatalf("expected pure decay to 1.8, got %v", current[0])
	}
}

func TestUpdateFlagsNonFinite(t *testing.T) {
	cfg := DefaultConfig()

	next, unstable := Update([]float64{0}, []float64{1}, []float64{math.Inf(1)}, cfg)
	if !unstable {
		t.Fatal("expected unstable flag")
	}
	if next[0] != 0 {
		t.Fatalf("expected zeroed trace, got %v", next[0])
	}
}
