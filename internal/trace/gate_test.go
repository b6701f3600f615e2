package trace

import (
	"math"
	"testing"
)

func TestGateScenario(t *testing.T) {
	// kappa=0.3, T=0.05, trace=0.55 → sigmoid(-5) ≈ 0.0067
	cfg := GateConfig{Kappa: 0.3, Temperature: 0.05}

	g := GateScalar(0.55, cfg)
	if math.Abs(g-1/(1+math.Exp(5))) > 1e-12 {
		t.Fatalf("expected sigmoid(-5), got %v", g)
	}
	if g > 0.01 {
		t.Fatalf("gate should be near-closed, got %v", g)
	}
}

func TestGateMonotoneInTrace(t *testing.T) {
	cfg := DefaultGateConfig()

	prev := math.Inf(1)
	for tr := 0.0; tr <= 1.0; tr += 0.01 {
		g := GateScalar(tr, cfg)
		if g > prev {
			t.Fatalf("gate increased at trace %v: %v > %v", tr, g, prev)
		}
		prev = g
	}
}

func TestGateOpenInterval(t *testing.T) {
	cfg := DefaultGateConfig()

	for _, tr := range []float64{0, 0.25, 0.5, 0.75, 1} {
		g := GateScalar(tr, cfg)
		if g <= 0 || g >= 1 {
			t.Fatalf("gate at trace %v outside (0,1): %v", tr, g)
		}
	}
}

func TestGateStableAtSaturationBounds(t *testing.T) {
	// Tiny temperature pushes the sigmoid argument to huge magnitudes.
	cfg := GateConfig{Kappa: 0.3, Temperature: 1e-9}

	for _, tr := range []float64{0, 1} {
		g := GateScalar(tr, cfg)
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("gate overflowed at trace %v: %v", tr, g)
		}
	}
	if g := GateScalar(0, cfg); g < 0.999999 {
		t.Fatalf("fully rested trace should open the gate, got %v", g)
	}
	if g := GateScalar(1, cfg); g > 1e-6 {
		t.Fatalf("fully refractory trace should close the gate, got %v", g)
	}
}

func TestGateVectorMatchesScalar(t *testing.T) {
	cfg := DefaultGateConfig()
	traces := []float64{0, 0.3, 0.55, 1}

	gates := Gate(traces, cfg)
	for i, tr := range traces {
		if gates[i] != GateScalar(tr, cfg) {
			t.Fatalf("vector/scalar mismatch at %v", tr)
		}
	}
}
