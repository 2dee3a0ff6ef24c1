package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umer279/gymratting-fitness-tracker/internal/models"
)

var (
	bench = models.Exercise{ID: "bench", Name: "Bench Press", Category: models.CategoryChest, ExerciseType: models.ExerciseTypeStrength}
	squat = models.Exercise{ID: "squat", Name: "Squat", Category: models.CategoryLegs, ExerciseType: models.ExerciseTypeStrength}
	run   = models.Exercise{ID: "run", Name: "Run", Category: models.CategoryCardio, ExerciseType: models.ExerciseTypeCardio}
	row   = models.Exercise{ID: "row", Name: "Row", Category: models.CategoryBack, ExerciseType: models.ExerciseTypeStrength}

	catalog = []models.Exercise{bench, squat, run, row}
	t0      = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
)

func intPtr(v int) *int { return &v }

func testPlan(exercises ...models.Exercise) models.WorkoutPlan {
	plan := models.WorkoutPlan{ID: "plan-1", Name: "Push Day"}
	for _, ex := range exercises {
		plan.Exercises = append(plan.Exercises, models.NewPlanExercise(ex))
	}
	return plan
}

func startSession(t *testing.T, exercises ...models.Exercise) *Session {
	t.Helper()
	s, err := Start(testPlan(exercises...), catalog, t0)
	require.NoError(t, err)
	return s
}

func ids(s *Session) []string {
	var out []string
	for _, pe := range s.Exercises {
		out = append(out, pe.ExerciseID)
	}
	return out
}

func TestStart(t *testing.T) {
	plan := testPlan(bench, run)
	s, err := Start(plan, catalog, t0)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Cursor)
	assert.False(t, s.Finished)
	assert.Equal(t, t0, s.StartTime)
	assert.Equal(t, "Push Day", s.PlanName)
	assert.Equal(t, models.ExerciseTypeStrength, s.Types["bench"])
	assert.Equal(t, models.ExerciseTypeCardio, s.Types["run"])

	// the session works on a copy
	*s.Exercises[0].NumberOfSets = 5
	require.NoError(t, s.Remove(1))
	assert.Equal(t, 3, *plan.Exercises[0].NumberOfSets)
	assert.Len(t, plan.Exercises, 2)
}

func TestStart_EmptyPlan(t *testing.T) {
	_, err := Start(models.WorkoutPlan{Name: "empty"}, catalog, t0)
	assert.ErrorIs(t, err, ErrEmptyPlan)
}

func TestNextPrev_Clamped(t *testing.T) {
	s := startSession(t, bench, squat)

	require.NoError(t, s.Prev())
	assert.Equal(t, 0, s.Cursor)
	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Cursor)

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "squat", cur.ExerciseID)
}

func TestRecordSet(t *testing.T) {
	s := startSession(t, bench)

	require.NoError(t, s.RecordSet("bench", 4, "100", "5"))
	assert.Len(t, s.Strength["bench"], 5)
	assert.Equal(t, SetInput{Weight: "100", Reps: "5"}, s.Strength["bench"][4])

	err := s.RecordSet("nope", 0, "1", "1")
	assert.ErrorIs(t, err, ErrUnknownExercise)

	err = s.RecordSet("bench", -1, "1", "1")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSets_PaddedToPrescription(t *testing.T) {
	s := startSession(t, bench)
	require.NoError(t, s.RecordSet("bench", 0, "60", "10"))

	sets := s.Sets("bench")
	require.Len(t, sets, 3)
	assert.Equal(t, "60", sets[0].Weight)
	assert.Empty(t, sets[2].Reps)
}

func TestReorder_CursorFollowsExercise(t *testing.T) {
	tests := []struct {
		name       string
		cursor     int
		from, to   int
		wantCursor int
		wantOrder  []string
	}{
		{name: "move current forward", cursor: 0, from: 0, to: 2, wantCursor: 2, wantOrder: []string{"squat", "run", "bench"}},
		{name: "move before cursor past it", cursor: 1, from: 0, to: 2, wantCursor: 0, wantOrder: []string{"squat", "run", "bench"}},
		{name: "move after cursor before it", cursor: 1, from: 2, to: 0, wantCursor: 2, wantOrder: []string{"run", "bench", "squat"}},
		{name: "unrelated move", cursor: 0, from: 1, to: 2, wantCursor: 0, wantOrder: []string{"bench", "run", "squat"}},
		{name: "destination out of range", cursor: 1, from: 0, to: 7, wantCursor: 1, wantOrder: []string{"bench", "squat", "run"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startSession(t, bench, squat, run)
			s.Cursor = tt.cursor
			cur, _ := s.Current()

			require.NoError(t, s.Reorder(tt.from, tt.to))
			assert.Equal(t, tt.wantOrder, ids(s))
			assert.Equal(t, tt.wantCursor, s.Cursor)
			if tt.to < len(s.Exercises) {
				after, _ := s.Current()
				assert.Equal(t, cur.ExerciseID, after.ExerciseID)
			}
		})
	}

	s := startSession(t, bench)
	assert.ErrorIs(t, s.Reorder(3, 0), ErrIndexOutOfRange)
}

func TestRemove(t *testing.T) {
	s := startSession(t, bench, squat, run)
	s.Cursor = 2

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []string{"bench", "run"}, ids(s))
	assert.Equal(t, 1, s.Cursor)

	require.NoError(t, s.Remove(1))
	assert.Equal(t, 0, s.Cursor)

	assert.ErrorIs(t, s.Remove(5), ErrIndexOutOfRange)

	require.NoError(t, s.Remove(0))
	assert.True(t, s.Finished)
	assert.ErrorIs(t, s.Next(), ErrSessionFinished)
}

func TestRemove_FirstExerciseThenFinalize(t *testing.T) {
	s := startSession(t, bench, squat)

	require.NoError(t, s.Remove(0))
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, []string{"squat"}, ids(s))

	record, err := s.Finalize(t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.True(t, s.Finished)
}

func TestReplace_TypeChangeAppliesDefaults(t *testing.T) {
	plan := models.WorkoutPlan{
		Name:      "Cardio",
		Exercises: []models.PlanExercise{{ExerciseID: "run", Duration: intPtr(1200), Notes: "easy"}},
	}
	s, err := Start(plan, catalog, t0)
	require.NoError(t, err)

	require.NoError(t, s.Replace(0, squat))
	got := s.Exercises[0]
	assert.Equal(t, "squat", got.ExerciseID)
	require.NotNil(t, got.NumberOfSets)
	assert.Equal(t, 3, *got.NumberOfSets)
	assert.Equal(t, "8-12", got.RepRange)
	assert.Nil(t, got.Duration)
	assert.Empty(t, got.Notes)
	assert.Equal(t, models.ExerciseTypeStrength, s.Types["squat"])

	require.NoError(t, s.Replace(0, run))
	assert.Equal(t, 600, s.Exercises[0].DurationSeconds())
	assert.Nil(t, s.Exercises[0].NumberOfSets)
}

func TestReplace_SameTypeKeepsPrescription(t *testing.T) {
	plan := models.WorkoutPlan{
		Name:      "Heavy",
		Exercises: []models.PlanExercise{{ExerciseID: "bench", NumberOfSets: intPtr(5), RepRange: "3-5"}},
	}
	s, err := Start(plan, catalog, t0)
	require.NoError(t, err)

	require.NoError(t, s.Replace(0, row))
	assert.Equal(t, "row", s.Exercises[0].ExerciseID)
	assert.Equal(t, 5, *s.Exercises[0].NumberOfSets)
	assert.Equal(t, "3-5", s.Exercises[0].RepRange)

	assert.ErrorIs(t, s.Replace(1, row), ErrIndexOutOfRange)
}

func TestFinalize(t *testing.T) {
	s := startSession(t, bench, squat, run)

	require.NoError(t, s.RecordSet("bench", 0, "100", "5"))
	require.NoError(t, s.RecordSet("bench", 1, "", "8"))
	require.NoError(t, s.RecordSet("bench", 2, "100", "0"))
	require.NoError(t, s.RecordSet("bench", 3, "abc", "-2"))
	require.NoError(t, s.MarkWarmup("bench", 0, true))
	require.NoError(t, s.SetNote("squat", "knee felt off"))
	require.NoError(t, s.RecordCardio("run", "20", "30", "5.2"))

	record, err := s.Finalize(t0.Add(45*time.Minute + 10*time.Second))
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "plan-1", record.PlanID)
	assert.Equal(t, "Push Day", record.PlanName)
	assert.Equal(t, 45*60+10, record.Duration)
	require.Len(t, record.Exercises, 3)

	benchOut := record.Exercises[0]
	assert.Equal(t, []models.PerformedSet{
		{Weight: 100, Reps: 5, IsWarmup: true},
		{Weight: 0, Reps: 8},
	}, benchOut.Sets)

	squatOut := record.Exercises[1]
	assert.Equal(t, "knee felt off", squatOut.Notes)
	assert.Empty(t, squatOut.Sets)

	runOut := record.Exercises[2]
	require.NotNil(t, runOut.CardioPerformance)
	assert.Equal(t, 1230, runOut.CardioPerformance.Duration)
	require.NotNil(t, runOut.CardioPerformance.Distance)
	assert.InDelta(t, 5.2, *runOut.CardioPerformance.Distance, 1e-9)

	_, err = s.Finalize(t0)
	assert.ErrorIs(t, err, ErrSessionFinished)
	assert.ErrorIs(t, s.RecordSet("bench", 0, "1", "1"), ErrSessionFinished)
}

func TestFinalize_CardioWithoutDistance(t *testing.T) {
	s := startSession(t, run)
	require.NoError(t, s.RecordCardio("run", "", "90", "0"))

	record, err := s.Finalize(t0.Add(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 90, record.Exercises[0].CardioPerformance.Duration)
	assert.Nil(t, record.Exercises[0].CardioPerformance.Distance)
}

func TestFinalize_NoCardioPrefill(t *testing.T) {
	s := startSession(t, run)

	record, err := s.Finalize(t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestElapsedAndProgress(t *testing.T) {
	s := startSession(t, bench, squat, run, row)
	assert.Equal(t, 0, s.Elapsed(t0.Add(-time.Second)))
	assert.Equal(t, 125, s.Elapsed(t0.Add(125*time.Second+300*time.Millisecond)))

	assert.InDelta(t, 0.25, s.Progress(), 1e-9)
	s.Cursor = 3
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
}

func TestPreviousPerformance(t *testing.T) {
	history := []models.WorkoutHistory{
		{ID: "w3", Exercises: []models.PerformedExercise{{ExerciseID: "bench", Notes: "notes only"}}},
		{ID: "w2", Exercises: []models.PerformedExercise{{ExerciseID: "bench", Sets: []models.PerformedSet{{Weight: 80, Reps: 8}}}}},
		{ID: "w1", Exercises: []models.PerformedExercise{{ExerciseID: "bench", Sets: []models.PerformedSet{{Weight: 70, Reps: 8}}}}},
	}

	prev := PreviousPerformance(history, "bench")
	require.NotNil(t, prev)
	assert.Equal(t, 80.0, prev.Sets[0].Weight)

	assert.Nil(t, PreviousPerformance(history, "squat"))
}

func TestParseLenient(t *testing.T) {
	assert.Equal(t, 0.0, parseFloat(""))
	assert.Equal(t, 0.0, parseFloat("NaN"))
	assert.Equal(t, 62.5, parseFloat(" 62.5 "))
	assert.Equal(t, 0, parseInt("x"))
	assert.Equal(t, 10, parseInt("10.7"))
	assert.Equal(t, 12, parseInt("12"))
}

func TestSetInputValues(t *testing.T) {
	w, r := SetInput{Weight: "", Reps: "8"}.Values()
	assert.Equal(t, 0.0, w)
	assert.Equal(t, 8, r)

	w, r = SetInput{Weight: "102.5", Reps: "abc"}.Values()
	assert.Equal(t, 102.5, w)
	assert.Equal(t, 0, r)
}

func TestRecord_WrongTypeRejected(t *testing.T) {
	s := startSession(t, bench, run)

	assert.ErrorIs(t, s.RecordCardio("bench", "1", "", ""), ErrWrongType)
	assert.ErrorIs(t, s.RecordSet("run", 0, "10", "5"), ErrWrongType)
	assert.ErrorIs(t, s.MarkWarmup("run", 0, true), ErrWrongType)
	assert.Empty(t, s.Cardio["bench"])
	assert.Empty(t, s.Strength["run"])

	require.NoError(t, s.RecordSet("bench", 0, "100", "5"))
	require.NoError(t, s.RecordCardio("run", "10", "", ""))
	record, err := s.Finalize(t0.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Len(t, record.Exercises, 2)
}
