//go:build integration_test || all_tests

package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/config"
	"github.com/umer279/gymratting-fitness-tracker/internal/models"
	"github.com/umer279/gymratting-fitness-tracker/internal/state"
)

func testStorageSetup(t *testing.T) (*Storage, string, func()) {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	url := os.Getenv("TURSO_DATABASE_URL")
	if url == "" {
		url = config.LocalDevURL
	}
	t.Logf("using libsql database: %s", url)

	st, err := New(timeoutCtx, config.DBConfig{
		ConnectionString: url,
		AuthToken:        os.Getenv("TURSO_AUTH_TOKEN"),
	})
	require.NoError(t, err)

	userID := gofakeit.UUID()
	return st, userID, func() {
		_ = st.DeleteUserData(context.Background(), userID)
		st.Close()
	}
}

func TestStorage_Profile(t *testing.T) {
	ctx := context.Background()
	st, userID, shutdown := testStorageSetup(t)
	defer shutdown()

	_, err := st.GetProfile(ctx, userID)
	require.ErrorIs(t, err, ErrNotFound)

	name := gofakeit.FirstName()
	_, err = st.CreateProfile(ctx, models.Profile{ID: userID, Name: name, Avatar: models.Avatars[0]})
	require.NoError(t, err)

	p, err := st.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, name, p.Name)

	require.NoError(t, st.UpdateProfile(ctx, models.Profile{ID: userID, Name: "renamed", Avatar: models.Avatars[1]}))
	p, err = st.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", p.Name)
}

func TestStorage_Exercises(t *testing.T) {
	ctx := context.Background()
	st, userID, shutdown := testStorageSetup(t)
	defer shutdown()

	name := gofakeit.Noun() + " Press"
	ex, err := st.CreateExercise(ctx, models.Exercise{
		UserID:       userID,
		Name:         name,
		Category:     models.CategoryShoulders,
		ExerciseType: models.ExerciseTypeStrength,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ex.ID)

	_, err = st.CreateExercise(ctx, models.Exercise{UserID: userID, Name: name, Category: models.CategoryBack, ExerciseType: models.ExerciseTypeStrength})
	assert.ErrorIs(t, err, ErrDuplicateEx)

	exists, err := st.ExerciseExists(ctx, userID, name)
	require.NoError(t, err)
	assert.True(t, exists)

	ex.Category = models.CategoryChest
	require.NoError(t, st.UpdateExercise(ctx, *ex))

	list, err := st.ListExercises(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *ex, list[0])

	other, err := st.ListExercises(ctx, gofakeit.UUID())
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, st.DeleteExercise(ctx, userID, ex.ID))
	assert.ErrorIs(t, st.DeleteExercise(ctx, userID, ex.ID), ErrNotFound)
}

func TestStorage_PlansAndHistory(t *testing.T) {
	ctx := context.Background()
	st, userID, shutdown := testStorageSetup(t)
	defer shutdown()

	sets := 4
	duration := 900
	plan, err := st.CreatePlan(ctx, models.WorkoutPlan{
		UserID: userID,
		Name:   gofakeit.Name(),
		Exercises: []models.PlanExercise{
			{ExerciseID: "a", NumberOfSets: &sets, RepRange: "5"},
			{ExerciseID: "b", Duration: &duration},
		},
	})
	require.NoError(t, err)

	plans, err := st.ListPlans(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, *plan, plans[0])

	plan.Name = "Renamed"
	require.NoError(t, st.UpdatePlan(ctx, *plan))

	distance := 3.2
	older, err := st.CreateWorkout(ctx, models.WorkoutHistory{
		UserID:   userID,
		PlanID:   plan.ID,
		PlanName: plan.Name,
		Date:     time.Now().Add(-48 * time.Hour),
		Duration: 1800,
		Exercises: []models.PerformedExercise{
			{ExerciseID: "a", Sets: []models.PerformedSet{{Weight: 100, Reps: 5}, {Weight: 60, Reps: 8, IsWarmup: true}}},
			{ExerciseID: "b", CardioPerformance: &models.CardioPerformance{Duration: 600, Distance: &distance}},
		},
	})
	require.NoError(t, err)
	newer, err := st.CreateWorkout(ctx, models.WorkoutHistory{UserID: userID, PlanID: plan.ID, PlanName: plan.Name, Date: time.Now()})
	require.NoError(t, err)

	history, err := st.ListHistory(ctx, userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.ID, history[0].ID)
	assert.Equal(t, *older, history[1])

	require.NoError(t, st.DeleteWorkout(ctx, userID, older.ID))
	require.NoError(t, st.DeletePlan(ctx, userID, plan.ID))
	assert.ErrorIs(t, st.DeletePlan(ctx, userID, plan.ID), ErrNotFound)
}

func TestStorage_BackupRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, userID, shutdown := testStorageSetup(t)
	defer shutdown()

	app := state.NewApp(st, userID, gofakeit.FirstName())
	require.NoError(t, app.Load(ctx))
	ex, err := app.AddExercise(ctx, models.Exercise{Name: "Deadlift", Category: models.CategoryBack, ExerciseType: models.ExerciseTypeStrength})
	require.NoError(t, err)
	_, err = app.AddPlan(ctx, models.WorkoutPlan{Name: "Pull", Exercises: []models.PlanExercise{models.NewPlanExercise(*ex)}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "backup.toml")
	dumped, err := st.ExportUserData(ctx, userID, path)
	require.NoError(t, err)
	require.Len(t, dumped.Exercises, 1)

	require.NoError(t, st.DeleteUserData(ctx, userID))

	restored, err := ReadBackup(path)
	require.NoError(t, err)
	require.NoError(t, st.ImportUserData(ctx, userID, restored))

	reloaded := state.NewApp(st, userID, "")
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, app.Exercises(), reloaded.Exercises())
	assert.Equal(t, app.Plans(), reloaded.Plans())
	assert.Equal(t, app.Profile(), reloaded.Profile())
}
