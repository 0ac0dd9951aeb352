package fatigue

// repFactor scales stimulus by rep count, clamped so very-low-rep strength
// sets still count and very-high-rep sets don't dominate.
func repFactor(reps int) float64 {
	f := float64(reps) / 10
	if f < 0.7 {
		return 0.7
	}
	if f > 1.6 {
		return 1.6
	}
	return f
}

// Accumulate computes the raw per-muscle stimulus one performance of the
// template imposes. Each exercise contributes max(0.6, sets*repFactor(reps))
// distributed by its resolved load weights; muscles hit by several exercises
// accumulate additively within the session. Cross-session stacking uses the
// compounding rule in ComputeMuscleFatigue, not addition.
func (e *Engine) Accumulate(tpl Template) map[MuscleGroup]float64 {
	out := make(map[MuscleGroup]float64)
	for _, ex := range tpl.Exercises {
		stim := float64(ex.Sets) * repFactor(ex.Reps)
		if stim < 0.6 {
			stim = 0.6
		}
		for _, w := range e.ResolveLoad(ex.ID, ex.Muscles) {
			out[w.Muscle] += stim * w.Pct / 100
		}
	}
	return out
}
