package fatigue

import "math"

// Tier is a discrete intensity class derived from stimulus magnitude.
type Tier int

const (
	TierLight Tier = iota
	TierModerate
	TierHeavy
	TierVeryHeavy
)

func (t Tier) String() string {
	switch t {
	case TierLight:
		return "light"
	case TierModerate:
		return "moderate"
	case TierHeavy:
		return "heavy"
	case TierVeryHeavy:
		return "very_heavy"
	default:
		return "unknown"
	}
}

// ClassifyTier buckets a stimulus value. Boundaries are lower-bound
// inclusive: exactly 2.5 is moderate, 5 is heavy, 8 is very heavy.
func ClassifyTier(stimulus float64) Tier {
	switch {
	case stimulus < 2.5:
		return TierLight
	case stimulus < 5:
		return TierModerate
	case stimulus < 8:
		return TierHeavy
	default:
		return TierVeryHeavy
	}
}

// tierMultiplier scales the base recovery duration per tier.
var tierMultiplier = [...]float64{
	TierLight:     0.35,
	TierModerate:  0.75,
	TierHeavy:     1.00,
	TierVeryHeavy: 1.30,
}

// tierPeakLoad is the remaining-load fraction immediately after the session.
var tierPeakLoad = [...]float64{
	TierLight:     0.35,
	TierModerate:  0.55,
	TierHeavy:     0.75,
	TierVeryHeavy: 0.90,
}

// Base recovery durations in hours by muscle category. Large hip and
// lower-body muscles recover slowest; calves fastest among the specials.
const (
	recoveryHoursHip     = 84
	recoveryHoursCalves  = 48
	recoveryHoursTorso   = 60
	recoveryHoursDefault = 36
)

// defaultRecoveryHours assigns base recovery durations to the muscles that
// deviate from the 36h default.
var defaultRecoveryHours = map[MuscleGroup]float64{
	Quads:      recoveryHoursHip,
	Hamstrings: recoveryHoursHip,
	Glutes:     recoveryHoursHip,
	Adductors:  recoveryHoursHip,
	Abductors:  recoveryHoursHip,
	HipFlexors: recoveryHoursHip,

	Calves:   recoveryHoursCalves,
	Tibialis: recoveryHoursCalves,

	ChestUpper:    recoveryHoursTorso,
	ChestLower:    recoveryHoursTorso,
	Lats:          recoveryHoursTorso,
	Traps:         recoveryHoursTorso,
	Rhomboids:     recoveryHoursTorso,
	ErectorSpinae: recoveryHoursTorso,
}

// baseRecoveryHours returns the characteristic recovery duration for a muscle.
func (e *Engine) baseRecoveryHours(m MuscleGroup) float64 {
	if h, ok := e.recovery[m]; ok {
		return h
	}
	return recoveryHoursDefault
}

// DecayedLoad returns the remaining-load fraction of a session's stimulus on
// one muscle after ageHours have elapsed. The curve is
// peak * exp(-3*age/recovery); the -3 constant puts the load at ~5% of peak
// after one full recovery period (exp(-3) ≈ 0.05). Returns 0 for
// non-positive stimulus or a non-positive recovery duration.
func (e *Engine) DecayedLoad(stimulus, ageHours float64, muscle MuscleGroup) float64 {
	if stimulus <= 0 {
		return 0
	}
	tier := ClassifyTier(stimulus)
	recovery := e.baseRecoveryHours(muscle) * tierMultiplier[tier]
	if recovery <= 0 {
		return 0
	}
	return tierPeakLoad[tier] * math.Exp(-3*ageHours/recovery)
}
