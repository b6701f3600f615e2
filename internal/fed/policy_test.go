package fed

import (
	"math"
	"testing"
)

func reportsWithBudgets(budgets ...float64) []Report {
	reps := make([]Report, len(budgets))
	for i, b := range budgets {
		reps[i] = Report{
			ClientID:    string(rune('a' + i)),
			Budget:      []float64{b},
			Eligibility: []float64{0},
		}
	}
	return reps
}

func TestHarmonicMeanBudgets(t *testing.T) {
	p := NewHarmonicMeanPolicy()
	got := p.CombineBudgets(reportsWithBudgets(0.2, 0.1, 0.05))

	want := 3.0 / (1/0.2 + 1/0.1 + 1/0.05) // 3/35
	if math.Abs(got[0]-want) > 1e-12 {
		t.Fatalf("harmonic mean = %v, want %v", got[0], want)
	}

	arithmetic := (0.2 + 0.1 + 0.05) / 3
	if math.Abs(got[0]-arithmetic) < 1e-3 {
		t.Fatalf("combined budget %v matches the arithmetic mean %v", got[0], arithmetic)
	}
}

func TestHarmonicMeanWeakestLink(t *testing.T) {
	p := NewHarmonicMeanPolicy()
	got := p.CombineBudgets(reportsWithBudgets(1, 1, 1e-9))

	// One near-zero client pulls the aggregate down to its scale.
	if got[0] > 1e-8 {
		t.Fatalf("near-zero budget did not dominate: %v", got[0])
	}
}

func TestHarmonicMeanZeroBudgetGuard(t *testing.T) {
	p := NewHarmonicMeanPolicy()
	got := p.CombineBudgets(reportsWithBudgets(0, 0.5))
	if math.IsNaN(got[0]) || math.IsInf(got[0], 0) {
		t.Fatalf("zero budget produced non-finite aggregate: %v", got[0])
	}
}

func TestWeightedEligibilityAverage(t *testing.T) {
	p := NewHarmonicMeanPolicy()
	reps := []Report{
		{ClientID: "a", Budget: []float64{1}, Eligibility: []float64{0}, Weight: 1},
		{ClientID: "b", Budget: []float64{1}, Eligibility: []float64{4}, Weight: 3},
	}
	got := p.CombineEligibility(reps)
	if got[0] != 3 {
		t.Fatalf("weighted average = %v, want 3", got[0])
	}
}

func TestEligibilityWeightFallsBackToSampleCount(t *testing.T) {
	p := NewHarmonicMeanPolicy()
	reps := []Report{
		{ClientID: "a", Budget: []float64{1}, Eligibility: []float64{0}, SampleCount: 100},
		{ClientID: "b", Budget: []float64{1}, Eligibility: []float64{4}, SampleCount: 300},
	}
	got := p.CombineEligibility(reps)
	if got[0] != 3 {
		t.Fatalf("sample-count weighted average = %v, want 3", got[0])
	}
}

func TestTrimmedMeanDropsOutliers(t *testing.T) {
	p, err := NewTrimmedMeanPolicy(0.2)
	if err != nil {
		t.Fatalf("NewTrimmedMeanPolicy: %v", err)
	}
	got := p.CombineBudgets(reportsWithBudgets(0, 1, 2, 3, 100))
	if got[0] != 2 {
		t.Fatalf("trimmed mean = %v, want 2", got[0])
	}
}

func TestTrimmedMeanNoTrim(t *testing.T) {
	p, err := NewTrimmedMeanPolicy(0)
	if err != nil {
		t.Fatalf("NewTrimmedMeanPolicy: %v", err)
	}
	got := p.CombineBudgets(reportsWithBudgets(1, 2, 3))
	if got[0] != 2 {
		t.Fatalf("untrimmed mean = %v, want 2", got[0])
	}
}

func TestTrimmedMeanRejectsBadFraction(t *testing.T) {
	// Trim of one half or more can empty the kept set for small rounds,
	// turning the mean into NaN.
	for _, trim := range []float64{0.5, 0.7, -0.1} {
		if _, err := NewTrimmedMeanPolicy(trim); err == nil {
			t.Fatalf("trim %v accepted", trim)
		}
	}
}

func TestTrimmedMeanSmallRoundStaysFinite(t *testing.T) {
	p, err := NewTrimmedMeanPolicy(0.49)
	if err != nil {
		t.Fatalf("NewTrimmedMeanPolicy: %v", err)
	}
	got := p.CombineBudgets(reportsWithBudgets(1, 3))
	if math.IsNaN(got[0]) || math.IsInf(got[0], 0) {
		t.Fatalf("two-report round produced non-finite aggregate: %v", got[0])
	}
	if got[0] != 2 {
		t.Fatalf("mean = %v, want 2", got[0])
	}
}
