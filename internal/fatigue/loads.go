package fatigue

import "sort"

// defaultExerciseLoads is the curated exercise-to-muscle distribution table,
// keyed by exercise id. Percentages are relative weights. Exercises missing
// from this table fall back to an equal split across their own muscle tags.
var defaultExerciseLoads = map[string][]MuscleWeight{
	// Chest
	"bench-press":          {{ChestLower, 40}, {ChestUpper, 20}, {Triceps, 22}, {FrontDelts, 18}},
	"incline-bench-press":  {{ChestUpper, 45}, {ChestLower, 15}, {FrontDelts, 22}, {Triceps, 18}},
	"dumbbell-bench-press": {{ChestLower, 38}, {ChestUpper, 20}, {Triceps, 20}, {FrontDelts, 22}},
	"chest-fly":            {{ChestLower, 50}, {ChestUpper, 30}, {FrontDelts, 20}},
	"push-up":              {{ChestLower, 35}, {ChestUpper, 20}, {Triceps, 25}, {FrontDelts, 15}, {Abs, 5}},
	"dip":                  {{ChestLower, 40}, {Triceps, 35}, {FrontDelts, 25}},

	// Back
	"deadlift":          {{ErectorSpinae, 25}, {Glutes, 25}, {Hamstrings, 20}, {Lats, 10}, {Traps, 10}, {Forearms, 10}},
	"romanian-deadlift": {{Hamstrings, 40}, {Glutes, 30}, {ErectorSpinae, 20}, {Forearms, 10}},
	"pull-up":           {{Lats, 45}, {Biceps, 20}, {Rhomboids, 15}, {RearDelts, 10}, {Forearms, 10}},
	"chin-up":           {{Lats, 40}, {Biceps, 30}, {Rhomboids, 15}, {Forearms, 15}},
	"lat-pulldown":      {{Lats, 50}, {Biceps, 20}, {Rhomboids, 15}, {RearDelts, 15}},
	"bent-over-row":     {{Lats, 30}, {Rhomboids, 25}, {Traps, 15}, {RearDelts, 10}, {Biceps, 10}, {ErectorSpinae, 10}},
	"seated-cable-row":  {{Lats, 30}, {Rhomboids, 30}, {Traps, 15}, {Biceps, 15}, {RearDelts, 10}},
	"face-pull":         {{RearDelts, 40}, {Rhomboids, 25}, {Traps, 20}, {RotatorCuff, 15}},
	"shrug":             {{Traps, 75}, {Forearms, 25}},
	"back-extension":    {{ErectorSpinae, 55}, {Glutes, 25}, {Hamstrings, 20}},

	// Shoulders
	"overhead-press": {{FrontDelts, 40}, {SideDelts, 25}, {Triceps, 25}, {ChestUpper, 10}},
	"lateral-raise":  {{SideDelts, 75}, {FrontDelts, 15}, {Traps, 10}},
	"front-raise":    {{FrontDelts, 70}, {SideDelts, 20}, {ChestUpper, 10}},
	"rear-delt-fly":  {{RearDelts, 60}, {Rhomboids, 25}, {Traps, 15}},
	"arnold-press":   {{FrontDelts, 40}, {SideDelts, 30}, {Triceps, 20}, {ChestUpper, 10}},

	// Arms
	"bicep-curl":       {{Biceps, 75}, {Forearms, 25}},
	"hammer-curl":      {{Biceps, 55}, {Forearms, 45}},
	"tricep-pushdown":  {{Triceps, 85}, {Forearms, 15}},
	"tricep-extension": {{Triceps, 90}, {Forearms, 10}},
	"skull-crusher":    {{Triceps, 85}, {Forearms, 15}},

	// Legs
	"squat":         {{Quads, 40}, {Glutes, 25}, {Hamstrings, 10}, {ErectorSpinae, 10}, {Adductors, 10}, {Abs, 5}},
	"front-squat":   {{Quads, 50}, {Glutes, 20}, {ErectorSpinae, 10}, {Abs, 10}, {Adductors, 10}},
	"leg-press":     {{Quads, 50}, {Glutes, 25}, {Hamstrings, 15}, {Adductors, 10}},
	"leg-extension": {{Quads, 90}, {HipFlexors, 10}},
	"leg-curl":      {{Hamstrings, 85}, {Calves, 15}},
	"lunge":         {{Quads, 35}, {Glutes, 30}, {Hamstrings, 15}, {Adductors, 10}, {Abs, 10}},
	"hip-thrust":    {{Glutes, 60}, {Hamstrings, 25}, {ErectorSpinae, 15}},
	"hip-abduction": {{Abductors, 80}, {Glutes, 20}},
	"calf-raise":    {{Calves, 90}, {Tibialis, 10}},

	// Core
	"plank":             {{Abs, 55}, {Obliques, 25}, {ErectorSpinae, 20}},
	"crunch":            {{Abs, 80}, {Obliques, 20}},
	"russian-twist":     {{Obliques, 60}, {Abs, 30}, {HipFlexors, 10}},
	"hanging-leg-raise": {{Abs, 50}, {HipFlexors, 30}, {Obliques, 10}, {Forearms, 10}},
}

// ResolveLoad returns the weighted muscle distribution for an exercise.
// Curated entries win: they are filtered to valid muscles and positive
// percentages and sorted descending by weight (stable, so insertion order
// breaks ties). Without a curated entry the fallback tags are normalized and
// split equally. An empty result is valid: the exercise simply contributes
// no stimulus anywhere.
func (e *Engine) ResolveLoad(exerciseID string, fallbackTags []MuscleGroup) []MuscleWeight {
	if curated, ok := e.loads[exerciseID]; ok {
		out := make([]MuscleWeight, 0, len(curated))
		for _, w := range curated {
			if w.Pct <= 0 {
				continue
			}
			if _, ok := e.canonical[w.Muscle]; !ok {
				continue
			}
			out = append(out, w)
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Pct > out[j].Pct })
		return out
	}

	tags := e.NormalizeMuscles(fallbackTags)
	if len(tags) == 0 {
		return nil
	}
	share := 100.0 / float64(len(tags))
	out := make([]MuscleWeight, len(tags))
	for i, m := range tags {
		out[i] = MuscleWeight{Muscle: m, Pct: share}
	}
	return out
}
