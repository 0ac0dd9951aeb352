package fatigue

import (
	"reflect"
	"testing"
)

// TestNormalizeMuscles_AliasExpansion verifies that legacy coarse tags expand
// to their fine-grained groups in order.
func TestNormalizeMuscles_AliasExpansion(t *testing.T) {
	e := New()
	cases := []struct {
		name string
		in   []MuscleGroup
		want []MuscleGroup
	}{
		{"chest", []MuscleGroup{TagChest}, []MuscleGroup{ChestUpper, ChestLower}},
		{"back", []MuscleGroup{TagBack}, []MuscleGroup{Lats, Traps, Rhomboids, ErectorSpinae}},
		{"lower_back", []MuscleGroup{TagLowerBack}, []MuscleGroup{ErectorSpinae}},
		{"legs", []MuscleGroup{TagLegs}, []MuscleGroup{Quads, Hamstrings, Glutes, Calves}},
	}
	for _, tc := range cases {
		got := e.NormalizeMuscles(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: NormalizeMuscles(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

// TestNormalizeMuscles_CanonicalPassthrough verifies canonical tags survive
// unchanged and unknown tags are dropped silently.
func TestNormalizeMuscles_CanonicalPassthrough(t *testing.T) {
	e := New()
	got := e.NormalizeMuscles([]MuscleGroup{Quads, "left_pinky", Calves})
	want := []MuscleGroup{Quads, Calves}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeMuscles = %v, want %v", got, want)
	}
}

// TestNormalizeMuscles_Dedupe verifies first-occurrence dedupe when an alias
// expansion overlaps an explicit tag.
func TestNormalizeMuscles_Dedupe(t *testing.T) {
	e := New()
	got := e.NormalizeMuscles([]MuscleGroup{Lats, TagBack, Lats})
	want := []MuscleGroup{Lats, Traps, Rhomboids, ErectorSpinae}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeMuscles = %v, want %v", got, want)
	}
}

// TestNormalizeMuscles_Empty verifies that an all-unknown list yields nil
// rather than an error.
func TestNormalizeMuscles_Empty(t *testing.T) {
	e := New()
	if got := e.NormalizeMuscles([]MuscleGroup{"nope", "also_nope"}); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
	if got := e.NormalizeMuscles(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil input, got %v", got)
	}
}
