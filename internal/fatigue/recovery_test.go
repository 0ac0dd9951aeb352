package fatigue

import (
	"math"
	"testing"
)

// TestClassifyTier_Boundaries verifies lower-bound-inclusive tier boundaries:
// a stimulus exactly on a boundary belongs to the higher tier.
func TestClassifyTier_Boundaries(t *testing.T) {
	cases := []struct {
		stimulus float64
		want     Tier
	}{
		{0, TierLight},
		{2.49, TierLight},
		{2.5, TierModerate},
		{4.99, TierModerate},
		{5.0, TierHeavy},
		{7.99, TierHeavy},
		{8.0, TierVeryHeavy},
		{50, TierVeryHeavy},
	}
	for _, tc := range cases {
		if got := ClassifyTier(tc.stimulus); got != tc.want {
			t.Errorf("ClassifyTier(%v) = %s, want %s", tc.stimulus, got, tc.want)
		}
	}
}

// TestDecayedLoad_FreshSession verifies that at age 0 the decayed load equals
// the tier's peak load.
func TestDecayedLoad_FreshSession(t *testing.T) {
	e := New()
	cases := []struct {
		stimulus float64
		want     float64
	}{
		{1.0, 0.35},
		{4.0, 0.55},
		{6.0, 0.75},
		{9.0, 0.90},
	}
	for _, tc := range cases {
		if got := e.DecayedLoad(tc.stimulus, 0, Biceps); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DecayedLoad(%v, 0) = %v, want peak %v", tc.stimulus, got, tc.want)
		}
	}
}

// TestDecayedLoad_OneRecoveryPeriod verifies the ~5% residual after one full
// recovery period. Moderate tier on a default-category muscle: recovery is
// 36h * 0.75 = 27h, so at 27h the load is 0.55*exp(-3).
func TestDecayedLoad_OneRecoveryPeriod(t *testing.T) {
	e := New()
	got := e.DecayedLoad(4.0, 27, Biceps)
	want := 0.55 * math.Exp(-3)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DecayedLoad(4, 27h, biceps) = %v, want %v", got, want)
	}
	if got > 0.03 {
		t.Errorf("expected residual under ~3%% of capacity, got %v", got)
	}
}

// TestDecayedLoad_MonotonicDecay verifies that increasing age strictly
// decreases the decayed load.
func TestDecayedLoad_MonotonicDecay(t *testing.T) {
	e := New()
	prev := math.Inf(1)
	for age := 0.0; age <= 200; age += 5 {
		got := e.DecayedLoad(6.0, age, Quads)
		if got >= prev {
			t.Fatalf("decay not strictly decreasing at age %v: %v >= %v", age, got, prev)
		}
		if got <= 0 {
			t.Fatalf("decayed load must stay positive, got %v at age %v", got, age)
		}
		prev = got
	}
}

// TestDecayedLoad_MuscleCategories verifies the per-category base recovery
// durations: hip muscles decay slower than default-category muscles.
func TestDecayedLoad_MuscleCategories(t *testing.T) {
	e := New()
	const stimulus, age = 6.0, 24.0
	hip := e.DecayedLoad(stimulus, age, Glutes)       // 84h base
	torso := e.DecayedLoad(stimulus, age, Lats)       // 60h base
	calf := e.DecayedLoad(stimulus, age, Calves)      // 48h base
	small := e.DecayedLoad(stimulus, age, SideDelts)  // 36h default
	if !(hip > torso && torso > calf && calf > small) {
		t.Errorf("expected hip > torso > calves > default at equal age, got %v %v %v %v",
			hip, torso, calf, small)
	}
}

// TestDecayedLoad_ZeroStimulus verifies the zero-contribution guard.
func TestDecayedLoad_ZeroStimulus(t *testing.T) {
	e := New()
	if got := e.DecayedLoad(0, 10, Quads); got != 0 {
		t.Errorf("DecayedLoad(0) = %v, want 0", got)
	}
	if got := e.DecayedLoad(-2, 10, Quads); got != 0 {
		t.Errorf("DecayedLoad(-2) = %v, want 0", got)
	}
}

// TestDecayedLoad_ZeroRecoveryDuration verifies a non-positive recovery
// duration yields zero rather than dividing by zero.
func TestDecayedLoad_ZeroRecoveryDuration(t *testing.T) {
	tables := DefaultTables()
	tables.RecoveryHours = map[MuscleGroup]float64{Quads: 0}
	e := NewWithTables(tables)
	if got := e.DecayedLoad(4.0, 10, Quads); got != 0 {
		t.Errorf("expected 0 for zero recovery duration, got %v", got)
	}
}
