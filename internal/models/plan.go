package models

const (
	DefaultNumberOfSets   = 3
	DefaultRepRange       = "8-12"
	DefaultCardioDuration = 600 // seconds
)

type WorkoutPlan struct {
	ID        string         `json:"id" toml:"id"`
	UserID    string         `json:"user_id" toml:"user_id"`
	Name      string         `json:"name" toml:"name"`
	Exercises []PlanExercise `json:"exercises" toml:"exercises"`
}

// PlanExercise is one prescribed entry of a plan. Strength entries use
// NumberOfSets/RepRange/TargetWeight, cardio entries use Duration (seconds).
type PlanExercise struct {
	ExerciseID   string   `json:"exerciseId" toml:"exercise_id"`
	NumberOfSets *int     `json:"numberOfSets,omitempty" toml:"number_of_sets,omitempty"`
	RepRange     string   `json:"repRange,omitempty" toml:"rep_range,omitempty"`
	TargetWeight *float64 `json:"targetWeight,omitempty" toml:"target_weight,omitempty"`
	Duration     *int     `json:"duration,omitempty" toml:"duration,omitempty"`
	Notes        string   `json:"notes,omitempty" toml:"notes,omitempty"`
}

// NewPlanExercise returns a plan entry for ex with the default prescription
// of its type.
func NewPlanExercise(ex Exercise) PlanExercise {
	pe := PlanExercise{ExerciseID: ex.ID}
	if ex.IsStrength() {
		sets := DefaultNumberOfSets
		pe.NumberOfSets = &sets
		pe.RepRange = DefaultRepRange
	} else {
		duration := DefaultCardioDuration
		pe.Duration = &duration
	}
	return pe
}

// Sets returns the prescribed set count, falling back to the default.
func (pe PlanExercise) Sets() int {
	if pe.NumberOfSets == nil || *pe.NumberOfSets <= 0 {
		return DefaultNumberOfSets
	}
	return *pe.NumberOfSets
}

// DurationSeconds returns the prescribed cardio duration, 0 when absent.
func (pe PlanExercise) DurationSeconds() int {
	if pe.Duration == nil {
		return 0
	}
	return *pe.Duration
}

//
// For TOML parsing only
//

type PlanTOML struct {
	Name      string             `toml:"name"`
	Exercises []PlanExerciseTOML `toml:"exercise"`
}

type PlanExerciseTOML struct {
	Name         string   `toml:"name"`
	Sets         *int     `toml:"sets,omitempty"`
	Reps         string   `toml:"reps,omitempty"`
	TargetWeight *float64 `toml:"target_weight,omitempty"`
	Minutes      *float64 `toml:"minutes,omitempty"`
	Notes        string   `toml:"notes,omitempty"`
}
