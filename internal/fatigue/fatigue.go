// Package fatigue estimates per-muscle recovery state from logged workouts.
//
// The engine is a fixed deterministic formula: it attributes each logged
// session's training stimulus across muscle groups, decays it exponentially
// with per-muscle recovery durations, and compounds the remaining load from
// all sessions into a 0-100 fatigue score per muscle. It performs no I/O,
// holds no mutable state, and never returns an error; malformed inputs
// (dangling template references, unknown muscle tags, future-dated logs)
// contribute nothing instead of failing a render.
package fatigue

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MuscleWeight expresses what share of an exercise's stimulus lands on one
// muscle. Percentages are relative weights and need not sum to 100.
type MuscleWeight struct {
	Muscle MuscleGroup `json:"muscle"`
	Pct    float64     `json:"pct"`
}

// Exercise is one entry of a workout template. When ID matches the curated
// load table the curated distribution wins; otherwise stimulus is split
// equally across the normalized Muscles tags.
type Exercise struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Sets    int           `json:"sets"`
	Reps    int           `json:"reps"`
	Muscles []MuscleGroup `json:"muscles,omitempty"`
}

// Template is an ordered list of exercises a user can log.
type Template struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
}

// LogEntry records that a template was performed on a date. Only the date
// part of PerformedOn matters; sessions are anchored at noon UTC.
type LogEntry struct {
	TemplateID  uuid.UUID `json:"template_id"`
	PerformedOn time.Time `json:"performed_on"`
}

// windowHours is the lookback horizon. Sessions older than 14 days are
// defined to contribute nothing.
const windowHours = 336.0

// Tables bundles the static reference data the engine reads: the canonical
// muscle set, the legacy alias expansions, the curated per-exercise load
// distributions, and base recovery durations. Loaded once at startup and
// shared by reference; the engine never mutates them.
type Tables struct {
	Canonical     []MuscleGroup
	Aliases       map[MuscleGroup][]MuscleGroup
	ExerciseLoads map[string][]MuscleWeight
	RecoveryHours map[MuscleGroup]float64
}

// DefaultTables returns the built-in reference data.
func DefaultTables() Tables {
	return Tables{
		Canonical:     canonicalGroups,
		Aliases:       defaultAliases,
		ExerciseLoads: defaultExerciseLoads,
		RecoveryHours: defaultRecoveryHours,
	}
}

// Engine computes fatigue scores. Safe for concurrent use.
type Engine struct {
	canonical map[MuscleGroup]struct{}
	aliases   map[MuscleGroup][]MuscleGroup
	loads     map[string][]MuscleWeight
	recovery  map[MuscleGroup]float64
}

// New creates an engine with the built-in reference tables.
func New() *Engine {
	return NewWithTables(DefaultTables())
}

// NewWithTables creates an engine with caller-supplied reference tables.
func NewWithTables(t Tables) *Engine {
	canonical := make(map[MuscleGroup]struct{}, len(t.Canonical))
	for _, m := range t.Canonical {
		canonical[m] = struct{}{}
	}
	return &Engine{
		canonical: canonical,
		aliases:   t.Aliases,
		loads:     t.ExerciseLoads,
		recovery:  t.RecoveryHours,
	}
}

// ComputeMuscleFatigue folds every eligible log entry into a 0-100 score per
// muscle at evaluation instant now. Logs referencing a missing template and
// logs outside the 14-day window are skipped. Processing order does not
// affect the result: the per-muscle combination rule is commutative.
func (e *Engine) ComputeMuscleFatigue(logs []LogEntry, templates []Template, now time.Time) map[MuscleGroup]int {
	byID := make(map[uuid.UUID]*Template, len(templates))
	for i := range templates {
		byID[templates[i].ID] = &templates[i]
	}

	carryover := make(map[MuscleGroup]float64)

	for _, entry := range logs {
		tpl, ok := byID[entry.TemplateID]
		if !ok {
			continue // dangling reference; template was deleted
		}

		age := now.Sub(sessionInstant(entry.PerformedOn)).Hours()
		if age < 0 || age >= windowHours {
			continue
		}

		stimulus := e.Accumulate(*tpl)
		for muscle, s := range stimulus {
			if s <= 0 {
				continue
			}
			d := e.DecayedLoad(s, age, muscle)
			// Probabilistic-OR: stacked sessions compound toward 1
			// instead of summing past it.
			carryover[muscle] = 1 - (1-carryover[muscle])*(1-d)
		}
	}

	scores := make(map[MuscleGroup]int, len(carryover))
	for muscle, c := range carryover {
		scores[muscle] = int(math.Round(c * 100))
	}
	return scores
}

// sessionInstant anchors a performed-on date at noon UTC, so a session's age
// is measured from the middle of its calendar day.
func sessionInstant(performedOn time.Time) time.Time {
	y, m, d := performedOn.UTC().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
