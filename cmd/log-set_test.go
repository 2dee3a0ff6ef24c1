package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/session"
)

func benchSession(t *testing.T) *session.Session {
	t.Helper()
	bench := models.Exercise{ID: "bench", Name: "Bench Press", Category: models.CategoryChest, ExerciseType: models.ExerciseTypeStrength}
	plan := models.WorkoutPlan{ID: "p1", Name: "Push", Exercises: []models.PlanExercise{models.NewPlanExercise(bench)}}
	s, err := session.Start(plan, []models.Exercise{bench}, time.Now())
	require.NoError(t, err)
	return s
}

func TestWarmupArgs_SetNumberOptional(t *testing.T) {
	assert.NoError(t, warmupCmd.Args(warmupCmd, nil))
	assert.NoError(t, warmupCmd.Args(warmupCmd, []string{"2"}))
	assert.Error(t, warmupCmd.Args(warmupCmd, []string{"1", "2"}))
}

func TestWarmupPosition(t *testing.T) {
	s := benchSession(t)

	_, err := warmupPosition(nil, s, "bench")
	assert.Error(t, err)

	require.NoError(t, s.RecordSet("bench", 0, "40", "10"))
	require.NoError(t, s.RecordSet("bench", 1, "60", "8"))

	idx, err := warmupPosition(nil, s, "bench")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = warmupPosition([]string{"1"}, s, "bench")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = warmupPosition([]string{"0"}, s, "bench")
	assert.Error(t, err)
}

func TestSetPosition_NextUnlogged(t *testing.T) {
	s := benchSession(t)

	idx, err := setPosition(nil, s, "bench")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	require.NoError(t, s.RecordSet("bench", 0, "60", "8"))
	idx, err = setPosition(nil, s, "bench")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}
