package fatigue

// MuscleGroup identifies an anatomical region. The canonical set below is
// closed and fixed at process start; legacy coarse tags (kept around from
// before the taxonomy was split into fine-grained groups) are expanded by
// NormalizeMuscles via the alias table.
type MuscleGroup string

// Fine-grained canonical muscle groups.
const (
	ChestUpper    MuscleGroup = "chest_upper"
	ChestLower    MuscleGroup = "chest_lower"
	Lats          MuscleGroup = "lats"
	Traps         MuscleGroup = "traps"
	Rhomboids     MuscleGroup = "rhomboids"
	ErectorSpinae MuscleGroup = "erector_spinae"
	FrontDelts    MuscleGroup = "front_delts"
	SideDelts     MuscleGroup = "side_delts"
	RearDelts     MuscleGroup = "rear_delts"
	RotatorCuff   MuscleGroup = "rotator_cuff"
	Biceps        MuscleGroup = "biceps"
	Triceps       MuscleGroup = "triceps"
	Forearms      MuscleGroup = "forearms"
	Abs           MuscleGroup = "abs"
	Obliques      MuscleGroup = "obliques"
	Quads         MuscleGroup = "quads"
	Hamstrings    MuscleGroup = "hamstrings"
	Glutes        MuscleGroup = "glutes"
	Adductors     MuscleGroup = "adductors"
	Abductors     MuscleGroup = "abductors"
	HipFlexors    MuscleGroup = "hip_flexors"
	Calves        MuscleGroup = "calves"
	Tibialis      MuscleGroup = "tibialis"
	Neck          MuscleGroup = "neck"
)

// Legacy coarse tags. Templates created before the taxonomy refinement still
// carry these; they are never emitted by the engine.
const (
	TagChest     MuscleGroup = "chest"
	TagBack      MuscleGroup = "back"
	TagUpperBack MuscleGroup = "upper_back"
	TagLowerBack MuscleGroup = "lower_back"
	TagShoulders MuscleGroup = "shoulders"
	TagDelts     MuscleGroup = "delts"
	TagArms      MuscleGroup = "arms"
	TagLegs      MuscleGroup = "legs"
	TagCore      MuscleGroup = "core"
	TagAbdominal MuscleGroup = "abdominals"
	TagQuadricep MuscleGroup = "quadriceps"
)

// canonicalGroups is the closed set NormalizeMuscles keeps tags from.
var canonicalGroups = []MuscleGroup{
	ChestUpper, ChestLower,
	Lats, Traps, Rhomboids, ErectorSpinae,
	FrontDelts, SideDelts, RearDelts, RotatorCuff,
	Biceps, Triceps, Forearms,
	Abs, Obliques,
	Quads, Hamstrings, Glutes, Adductors, Abductors, HipFlexors,
	Calves, Tibialis,
	Neck,
}

// defaultAliases maps legacy coarse tags to their fine-grained expansions.
// Plain lookup table; a tag either expands here or stands for itself.
var defaultAliases = map[MuscleGroup][]MuscleGroup{
	TagChest:     {ChestUpper, ChestLower},
	TagBack:      {Lats, Traps, Rhomboids, ErectorSpinae},
	TagUpperBack: {Traps, Rhomboids},
	TagLowerBack: {ErectorSpinae},
	TagShoulders: {FrontDelts, SideDelts, RearDelts},
	TagDelts:     {FrontDelts, SideDelts, RearDelts},
	TagArms:      {Biceps, Triceps, Forearms},
	TagLegs:      {Quads, Hamstrings, Glutes, Calves},
	TagCore:      {Abs, Obliques},
	TagAbdominal: {Abs},
	TagQuadricep: {Quads},
}

// NormalizeMuscles expands legacy alias tags, keeps canonical tags, and drops
// anything unknown. Order is preserved and duplicates are removed by first
// occurrence. Unknown tags are dropped silently so templates written against
// a future (or misspelled) taxonomy degrade instead of failing.
func (e *Engine) NormalizeMuscles(raw []MuscleGroup) []MuscleGroup {
	var out []MuscleGroup
	seen := make(map[MuscleGroup]bool, len(raw))

	add := func(m MuscleGroup) {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}

	for _, tag := range raw {
		if expansion, ok := e.aliases[tag]; ok {
			for _, m := range expansion {
				add(m)
			}
			continue
		}
		if _, ok := e.canonical[tag]; ok {
			add(tag)
		}
	}
	return out
}
