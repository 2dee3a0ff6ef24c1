package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var day = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func workout(id string, daysAgo int) models.WorkoutHistory {
	return models.WorkoutHistory{ID: id, Date: day.AddDate(0, 0, -daysAgo)}
}

func historyIDs(hs []models.WorkoutHistory) []string {
	var out []string
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func TestReduce_SetUserDataSortsHistory(t *testing.T) {
	s := Reduce(State{}, SetUserData{
		UserID:  "u1",
		History: []models.WorkoutHistory{workout("old", 10), workout("new", 0), workout("mid", 5)},
	})

	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, []string{"new", "mid", "old"}, historyIDs(s.History))
}

func TestReduce_AddAndDeleteWorkout(t *testing.T) {
	s := Reduce(State{}, SetUserData{History: []models.WorkoutHistory{workout("a", 1), workout("c", 5)}})

	s = Reduce(s, AddWorkout{Workout: workout("b", 3)})
	assert.Equal(t, []string{"a", "b", "c"}, historyIDs(s.History))

	s = Reduce(s, AddWorkout{Workout: workout("newest", 0)})
	assert.Equal(t, []string{"newest", "a", "b", "c"}, historyIDs(s.History))

	s = Reduce(s, DeleteWorkout{ID: "a"})
	assert.Equal(t, []string{"newest", "b", "c"}, historyIDs(s.History))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	before := Reduce(State{}, SetUserData{
		Exercises: []models.Exercise{{ID: "e1", Name: "Bench"}},
		Plans:     []models.WorkoutPlan{{ID: "p1", Name: "Push"}},
	})

	after := Reduce(before, UpdateExercise{Exercise: models.Exercise{ID: "e1", Name: "Incline Bench"}})
	after = Reduce(after, DeletePlan{ID: "p1"})
	after = Reduce(after, AddExercise{Exercise: models.Exercise{ID: "e2", Name: "Row"}})

	assert.Equal(t, "Bench", before.Exercises[0].Name)
	assert.Len(t, before.Exercises, 1)
	assert.Len(t, before.Plans, 1)

	assert.Equal(t, "Incline Bench", after.Exercises[0].Name)
	assert.Len(t, after.Exercises, 2)
	assert.Empty(t, after.Plans)
}

func TestReduce_PlanActions(t *testing.T) {
	s := Reduce(State{}, AddPlan{Plan: models.WorkoutPlan{ID: "p1", Name: "Push"}})
	s = Reduce(s, AddPlan{Plan: models.WorkoutPlan{ID: "p2", Name: "Pull"}})
	s = Reduce(s, UpdatePlan{Plan: models.WorkoutPlan{ID: "p2", Name: "Pull Heavy"}})

	require.Len(t, s.Plans, 2)
	assert.Equal(t, "Pull Heavy", s.Plans[1].Name)
}

func TestReduce_ProfileAndLogOut(t *testing.T) {
	s := Reduce(State{UserID: "u1"}, UpdateProfileLocally{Profile: models.Profile{ID: "u1", Name: "sam", Avatar: "💪"}})
	require.NotNil(t, s.Profile)
	assert.Equal(t, "sam", s.Profile.Name)

	s = Reduce(s, LogOut{})
	assert.Equal(t, State{}, s)
}
