package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

func newLoadedApp(t *testing.T) (*App, *storeMock) {
	t.Helper()
	store := NewMockStore()
	app := NewApp(store, "u1", "sam")
	require.NoError(t, app.Load(context.Background()))
	return app, store
}

func TestApp_LoadCreatesProfile(t *testing.T) {
	app, store := newLoadedApp(t)

	require.NotNil(t, app.Profile())
	assert.Equal(t, "sam", app.Profile().Name)
	assert.Contains(t, models.Avatars, app.Profile().Avatar)
	assert.Contains(t, store.profiles, "u1")

	// a second load reuses the stored profile
	app.UpdateProfile(context.Background(), "samantha", "🏆")
	require.NoError(t, app.Load(context.Background()))
	assert.Equal(t, "samantha", app.Profile().Name)
}

func TestApp_LoadWithoutUser(t *testing.T) {
	app := NewApp(NewMockStore(), "", "")
	assert.ErrorIs(t, app.Load(context.Background()), ErrNoUser)
}

func TestApp_LoadScopesByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()
	other := NewApp(store, "u2", "other")
	require.NoError(t, other.Load(ctx))
	_, err := other.AddExercise(ctx, models.Exercise{Name: "Secret Lift"})
	require.NoError(t, err)

	app := NewApp(store, "u1", "sam")
	require.NoError(t, app.Load(ctx))
	assert.Empty(t, app.Exercises())
}

func TestApp_CreateRegistersServerRecord(t *testing.T) {
	ctx := context.Background()
	app, _ := newLoadedApp(t)

	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Bench", Category: models.CategoryChest, ExerciseType: models.ExerciseTypeStrength})
	require.NoError(t, err)
	assert.NotEmpty(t, ex.ID)
	assert.Equal(t, "u1", ex.UserID)
	assert.Equal(t, []models.Exercise{*ex}, app.Exercises())

	plan, err := app.AddPlan(ctx, models.WorkoutPlan{Name: "Push", Exercises: []models.PlanExercise{models.NewPlanExercise(*ex)}})
	require.NoError(t, err)
	found, ok := app.FindPlan("push")
	require.True(t, ok)
	assert.Equal(t, plan.ID, found.ID)

	w, err := app.AddWorkout(ctx, models.WorkoutHistory{PlanID: plan.ID, PlanName: plan.Name, Date: day})
	require.NoError(t, err)
	got, ok := app.FindWorkout("1")
	require.True(t, ok)
	assert.Equal(t, w.ID, got.ID)
}

func TestApp_FailedCreateRegistersNothing(t *testing.T) {
	ctx := context.Background()
	app, store := newLoadedApp(t)
	store.FailCreates = true

	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Bench"})
	assert.Nil(t, ex)
	assert.ErrorIs(t, err, ErrCreateFailed)

	plan, err := app.AddPlan(ctx, models.WorkoutPlan{Name: "Push"})
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrCreateFailed)

	w, err := app.AddWorkout(ctx, models.WorkoutHistory{Date: day})
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrCreateFailed)

	assert.Empty(t, app.Exercises())
	assert.Empty(t, app.Plans())
	assert.Empty(t, app.History())
}

func TestApp_FailedWritesKeepLocalChange(t *testing.T) {
	ctx := context.Background()
	app, store := newLoadedApp(t)

	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Bench"})
	require.NoError(t, err)
	plan, err := app.AddPlan(ctx, models.WorkoutPlan{Name: "Push"})
	require.NoError(t, err)
	w, err := app.AddWorkout(ctx, models.WorkoutHistory{Date: day})
	require.NoError(t, err)

	store.FailWrites = true

	renamed := *ex
	renamed.Name = "Flat Bench"
	app.UpdateExercise(ctx, renamed)
	assert.Equal(t, "Flat Bench", app.Exercises()[0].Name)
	assert.Equal(t, "Bench", store.exercises[0].Name)

	app.DeletePlan(ctx, plan.ID)
	assert.Empty(t, app.Plans())
	assert.Len(t, store.plans, 1)

	app.DeleteWorkout(ctx, w.ID)
	assert.Empty(t, app.History())
	assert.Len(t, store.history, 1)

	app.UpdateProfile(ctx, "new name", "🥊")
	assert.Equal(t, "new name", app.Profile().Name)
}

func TestApp_DeletesReachStore(t *testing.T) {
	ctx := context.Background()
	app, store := newLoadedApp(t)

	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Bench"})
	require.NoError(t, err)
	app.DeleteExercise(ctx, ex.ID)

	assert.Empty(t, app.Exercises())
	assert.Empty(t, store.exercises)
}

func TestApp_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	app, store := newLoadedApp(t)
	_, err := app.AddExercise(ctx, models.Exercise{Name: "Bench"})
	require.NoError(t, err)

	require.NoError(t, app.DeleteAccount(ctx))
	assert.Equal(t, State{}, app.State())
	assert.Empty(t, store.exercises)
	assert.NotContains(t, store.profiles, "u1")
}

func TestApp_FindExercise(t *testing.T) {
	ctx := context.Background()
	app, _ := newLoadedApp(t)
	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Bench Press"})
	require.NoError(t, err)

	byID, ok := app.FindExercise(ex.ID)
	require.True(t, ok)
	assert.Equal(t, "Bench Press", byID.Name)

	_, ok = app.FindExercise("bench press")
	assert.True(t, ok)

	_, ok = app.FindExercise("squat")
	assert.False(t, ok)

	_, ok = app.FindWorkout("0")
	assert.False(t, ok)
}
