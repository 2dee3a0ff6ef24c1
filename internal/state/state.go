// Package state holds the in-memory copy of a user's data and the reducer
// that is the only way to change it.
package state

import (
	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

type State struct {
	UserID    string
	Profile   *models.Profile
	Exercises []models.Exercise
	Plans     []models.WorkoutPlan
	// History is always sorted newest first.
	History []models.WorkoutHistory
}

// Action is a state change understood by Reduce.
type Action interface {
	action()
}

type SetUserData struct {
	UserID    string
	Profile   *models.Profile
	Exercises []models.Exercise
	Plans     []models.WorkoutPlan
	History   []models.WorkoutHistory
}

type UpdateProfileLocally struct{ Profile models.Profile }

type AddExercise struct{ Exercise models.Exercise }

type UpdateExercise struct{ Exercise models.Exercise }

type DeleteExercise struct{ ID string }

type AddPlan struct{ Plan models.WorkoutPlan }

type UpdatePlan struct{ Plan models.WorkoutPlan }

type DeletePlan struct{ ID string }

type AddWorkout struct{ Workout models.WorkoutHistory }

type DeleteWorkout struct{ ID string }

type LogOut struct{}

func (SetUserData) action()          {}
func (UpdateProfileLocally) action() {}
func (AddExercise) action()          {}
func (UpdateExercise) action()       {}
func (DeleteExercise) action()       {}
func (AddPlan) action()              {}
func (UpdatePlan) action()           {}
func (DeletePlan) action()           {}
func (AddWorkout) action()           {}
func (DeleteWorkout) action()        {}
func (LogOut) action()               {}

// Reduce returns the state after applying a. The input state is not
// modified; slices are copied before they change.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetUserData:
		history := append([]models.WorkoutHistory(nil), a.History...)
		models.SortHistory(history)
		return State{
			UserID:    a.UserID,
			Profile:   a.Profile,
			Exercises: append([]models.Exercise(nil), a.Exercises...),
			Plans:     append([]models.WorkoutPlan(nil), a.Plans...),
			History:   history,
		}

	case UpdateProfileLocally:
		p := a.Profile
		s.Profile = &p

	case AddExercise:
		s.Exercises = append(cloneSlice(s.Exercises), a.Exercise)

	case UpdateExercise:
		s.Exercises = replaceByID(s.Exercises, a.Exercise, func(e models.Exercise) string { return e.ID })

	case DeleteExercise:
		s.Exercises = removeByID(s.Exercises, a.ID, func(e models.Exercise) string { return e.ID })

	case AddPlan:
		s.Plans = append(cloneSlice(s.Plans), a.Plan)

	case UpdatePlan:
		s.Plans = replaceByID(s.Plans, a.Plan, func(p models.WorkoutPlan) string { return p.ID })

	case DeletePlan:
		s.Plans = removeByID(s.Plans, a.ID, func(p models.WorkoutPlan) string { return p.ID })

	case AddWorkout:
		s.History = append(cloneSlice(s.History), a.Workout)
		models.SortHistory(s.History)

	case DeleteWorkout:
		s.History = removeByID(s.History, a.ID, func(w models.WorkoutHistory) string { return w.ID })
		models.SortHistory(s.History)

	case LogOut:
		return State{}
	}

	return s
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return out
}

func replaceByID[T any](in []T, v T, id func(T) string) []T {
	out := cloneSlice(in)
	for i := range out {
		if id(out[i]) == id(v) {
			out[i] = v
		}
	}
	return out
}

func removeByID[T any](in []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if id(v) != target {
			out = append(out, v)
		}
	}
	return out
}
