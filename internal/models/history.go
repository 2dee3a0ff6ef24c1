package models

import (
	"sort"
	"time"
)

type PerformedSet struct {
	Weight   float64 `json:"weight" toml:"weight"`
	Reps     int     `json:"reps" toml:"reps"`
	IsWarmup bool    `json:"isWarmup,omitempty" toml:"is_warmup,omitempty"`
}

type CardioPerformance struct {
	Duration int      `json:"duration" toml:"duration"` // actual seconds
	Distance *float64 `json:"distance,omitempty" toml:"distance,omitempty"`
}

type PerformedExercise struct {
	ExerciseID        string             `json:"exerciseId" toml:"exercise_id"`
	Notes             string             `json:"notes,omitempty" toml:"notes,omitempty"`
	Sets              []PerformedSet     `json:"sets,omitempty" toml:"sets,omitempty"`
	CardioPerformance *CardioPerformance `json:"cardioPerformance,omitempty" toml:"cardio_performance,omitempty"`
}

// HasPerformance reports whether the entry carries sets or cardio data.
func (pe PerformedExercise) HasPerformance() bool {
	return len(pe.Sets) > 0 || pe.CardioPerformance != nil
}

// WorkingSets returns the sets that are not warmups.
func (pe PerformedExercise) WorkingSets() []PerformedSet {
	var sets []PerformedSet
	for _, s := range pe.Sets {
		if !s.IsWarmup {
			sets = append(sets, s)
		}
	}
	return sets
}

// WorkoutHistory is a finished session. It is created once and only ever
// deleted afterwards.
type WorkoutHistory struct {
	ID        string              `json:"id" toml:"id"`
	UserID    string              `json:"user_id" toml:"user_id"`
	PlanID    string              `json:"planId" toml:"plan_id"`
	PlanName  string              `json:"planName" toml:"plan_name"`
	Date      time.Time           `json:"date" toml:"date"`
	Duration  int                 `json:"duration" toml:"duration"` // seconds
	Exercises []PerformedExercise `json:"exercises" toml:"exercises"`
}

// SortHistory orders history newest first.
func SortHistory(history []WorkoutHistory) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})
}
